package model

import (
	"strconv"
	"time"
)

// DateLayout 规范化后的日期格式
const DateLayout = "2006-01-02"

// Location 门店位置
type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// YearlySales 年度实际销售额
type YearlySales struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

// Financial 门店财务信息
type Financial struct {
	Currency        string        `json:"currency"`
	MonthlyRent     float64       `json:"monthlyRent"`
	MonthlySales    float64       `json:"monthlySales"`
	Investment      float64       `json:"investment"`
	Deposit         float64       `json:"deposit,omitempty"`
	RentType        string        `json:"rentType,omitempty"`
	EstimatedSales  float64       `json:"estimatedSales,omitempty"`  // 开业前：预计月销售额
	EstimatedMargin float64       `json:"estimatedMargin,omitempty"` // 开业前：预计毛利率 (%)
	YearlySales     []YearlySales `json:"yearlySales,omitempty"`
}

// SalesFor 指定年份的实际销售额
func (f *Financial) SalesFor(year int) (float64, bool) {
	if f == nil {
		return 0, false
	}
	for _, ys := range f.YearlySales {
		if ys.Year == year {
			return ys.Amount, true
		}
	}
	return 0, false
}

// Store 规范化后的门店记录（只读）
type Store struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Brand       string        `json:"brand"`
	ChannelType string        `json:"channelType"`
	Location    Location      `json:"location"`
	Stage       Stage         `json:"stage"`
	RawStage    string        `json:"rawStage,omitempty"` // 导入时的原始状态名
	StageYear   *int          `json:"stageYear,omitempty"`
	Category    BrandCategory `json:"category,omitempty"`

	OpenDate     string `json:"openDate,omitempty"`     // 实际开业日（Open）或预计开业日
	ContractDate string `json:"contractDate,omitempty"` // 合同起始日，预计日期缺失时兜底

	Area      *float64   `json:"area,omitempty"`
	Financial *Financial `json:"financial,omitempty"`
}

// Region 门店所属分区
func (s *Store) Region() Region {
	return CountryToRegion(s.Location.Country)
}

// Class 门店分类
func (s *Store) Class() ChannelClass {
	return ClassifyChannel(s.ChannelType)
}

// IsHouse 是否为自有品牌门店
func (s *Store) IsHouse() bool {
	return s.Category == CategoryHouse || IsHouseBrand(s.Brand)
}

// OpenYear 实际开业年份
func (s *Store) OpenYear() (int, bool) {
	return DateYear(s.OpenDate)
}

// TargetYear 预计/目标年份：开业日优先，缺失时用合同日期
func (s *Store) TargetYear() (int, bool) {
	if y, ok := DateYear(s.OpenDate); ok {
		return y, true
	}
	return DateYear(s.ContractDate)
}

// EffectiveDate 按阶段取有效日期：Open 用实际开业日，其余用预计日期
func (s *Store) EffectiveDate() string {
	if s.Stage == StageOpen {
		if _, ok := DateYear(s.OpenDate); ok {
			return s.OpenDate
		}
		return ""
	}
	if _, ok := DateYear(s.OpenDate); ok {
		return s.OpenDate
	}
	if _, ok := DateYear(s.ContractDate); ok {
		return s.ContractDate
	}
	return ""
}

// EffectiveYear 有效日期所在年份
func (s *Store) EffectiveYear() (int, bool) {
	return DateYear(s.EffectiveDate())
}

// AreaValue 面积，缺失时为 0
func (s *Store) AreaValue() float64 {
	if s.Area == nil {
		return 0
	}
	return *s.Area
}

// DateYear 解析规范化日期的年份
func DateYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"2006.01.02",
	"2006-1-2",
	"2006-01",
	"2006/01",
	"2006",
}

// CanonicalDate 将多种日期写法规范化为 YYYY-MM-DD，无法解析时返回空串
func CanonicalDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout)
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(DateLayout)
	}
	return ""
}
