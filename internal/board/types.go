// Package board 进度看板的聚合计算：阶段、分区、品牌、逐年序列与 KPI
package board

import "pipelineboard/internal/model"

// Query 看板筛选条件
type Query struct {
	Years   []int  `json:"years"`
	Brand   string `json:"brand"`   // 品牌筛选，同时决定目标是否按品牌匹配
	Region  string `json:"region"`  // 分区筛选
	Class   string `json:"class"`   // 门店分类
	Country string `json:"country"` // 精确国家名
	// SalesYear 销售额统计年份；0 时取筛选年份中最大者，未筛选年份时取当前年份
	SalesYear int `json:"salesYear,omitempty"`
}

// StageCount 单个阶段的门店数
type StageCount struct {
	Stage       model.Stage    `json:"stage"`
	Count       int            `json:"count"`
	BrandCounts map[string]int `json:"brandCounts"`
}

// StageSummary 阶段汇总
type StageSummary struct {
	Stages       []StageCount        `json:"stages"`
	Exceptions   map[model.Stage]int `json:"exceptions"`
	Unclassified int                 `json:"unclassified"`
}

// RegionProgress 分区目标达成
type RegionProgress struct {
	Region    model.Region `json:"region"`
	OpenCount int          `json:"openCount"`
	Target    int          `json:"target"`
	Remaining int          `json:"remaining"`
	Progress  int          `json:"progress"` // 百分比
}

// BrandStat 品牌汇总
type BrandStat struct {
	Brand       string `json:"brand"`
	Open        int    `json:"open"`
	NewThisYear int    `json:"newThisYear"`
	Pipeline    int    `json:"pipeline"`
}

// YearPoint 逐年堆叠柱数据
type YearPoint struct {
	Year           int `json:"year"`
	PreviouslyOpen int `json:"previouslyOpen"`
	OpenedThisYear int `json:"openedThisYear"`
	Construction   int `json:"construction"`
	Signed         int `json:"signed"`
	Target         int `json:"target"`
	TargetTotal    int `json:"targetTotal"` // Target + PreviouslyOpen
}

// KPI 看板顶部卡片
type KPI struct {
	TotalOpen     int                `json:"totalOpen"`
	TotalPipeline int                `json:"totalPipeline"`
	SalesYear     int                `json:"salesYear"`
	YearlySales   map[string]float64 `json:"yearlySales"` // 币种 → 金额
}

// Snapshot 看板全部派生数据
type Snapshot struct {
	Query   Query            `json:"query"`
	Total   int              `json:"total"`
	Stages  StageSummary     `json:"stages"`
	Regions []RegionProgress `json:"regions"`
	Brands  []BrandStat      `json:"brands"`
	Series  []YearPoint      `json:"series"`
	KPI     KPI              `json:"kpi"`
}
