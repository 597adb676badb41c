package view

import (
	"encoding/json"
	"errors"
	"fmt"

	"pipelineboard/internal/pipeline"
)

// ErrUnknownMessage 无法识别的消息类型
var ErrUnknownMessage = errors.New("unknown view message")

// Msg 页面事件
type Msg interface {
	Type() string
}

// SearchChanged 搜索框输入
type SearchChanged struct {
	Query string `json:"query"`
}

// BrandSelected 品牌下拉
type BrandSelected struct {
	Brand string `json:"brand"`
}

// StageSelected 阶段下拉
type StageSelected struct {
	Stage string `json:"stage"`
}

// RegionSelected 分区下拉
type RegionSelected struct {
	Region string `json:"region"`
}

// ClassSelected 渠道分类下拉
type ClassSelected struct {
	Class string `json:"class"`
}

// YearsSelected 年份多选；Board 为 true 时修改看板年份，否则修改列表筛选
type YearsSelected struct {
	Years []int `json:"years"`
	Board bool  `json:"board"`
}

// SortClicked 点击列头
type SortClicked struct {
	Key pipeline.SortKey `json:"key"`
}

// NavigateToPipelineList 从看板点击跳转到列表，并带入筛选条件
type NavigateToPipelineList struct {
	Stage  string `json:"stage"`
	Brand  string `json:"brand"`
	Years  []int  `json:"years"`
	Region string `json:"region"`
	Class  string `json:"class"`
}

// TabChanged 切换标签页
type TabChanged struct {
	Tab Tab `json:"tab"`
}

// StoreSelected 选中门店（详情面板）
type StoreSelected struct {
	ID string `json:"id"`
}

// Reset 回到初始状态
type Reset struct{}

func (SearchChanged) Type() string          { return "search" }
func (BrandSelected) Type() string          { return "brand" }
func (StageSelected) Type() string          { return "stage" }
func (RegionSelected) Type() string         { return "region" }
func (ClassSelected) Type() string          { return "class" }
func (YearsSelected) Type() string          { return "years" }
func (SortClicked) Type() string            { return "sort" }
func (NavigateToPipelineList) Type() string { return "navigate" }
func (TabChanged) Type() string             { return "tab" }
func (StoreSelected) Type() string          { return "select" }
func (Reset) Type() string                  { return "reset" }

// Decode 按类型名解析 JSON 负载为消息
func Decode(kind string, payload json.RawMessage) (Msg, error) {
	var msg Msg
	switch kind {
	case "search":
		msg = &SearchChanged{}
	case "brand":
		msg = &BrandSelected{}
	case "stage":
		msg = &StageSelected{}
	case "region":
		msg = &RegionSelected{}
	case "class":
		msg = &ClassSelected{}
	case "years":
		msg = &YearsSelected{}
	case "sort":
		msg = &SortClicked{}
	case "navigate":
		msg = &NavigateToPipelineList{}
	case "tab":
		msg = &TabChanged{}
	case "select":
		msg = &StoreSelected{}
	case "reset":
		return Reset{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, kind)
	}

	if len(payload) > 0 && string(payload) != "null" {
		if err := json.Unmarshal(payload, msg); err != nil {
			return nil, fmt.Errorf("decode %s message: %w", kind, err)
		}
	}
	return deref(msg), nil
}

func deref(m Msg) Msg {
	switch v := m.(type) {
	case *SearchChanged:
		return *v
	case *BrandSelected:
		return *v
	case *StageSelected:
		return *v
	case *RegionSelected:
		return *v
	case *ClassSelected:
		return *v
	case *YearsSelected:
		return *v
	case *SortClicked:
		return *v
	case *NavigateToPipelineList:
		return *v
	case *TabChanged:
		return *v
	case *StoreSelected:
		return *v
	}
	return m
}
