package model

// Goal 目标条目：某年某分区某品牌的目标门店数
type Goal struct {
	ID     string `json:"id"`
	Year   int    `json:"year"`
	Region Region `json:"region"`
	Brand  string `json:"brand"`
	Target int    `json:"target"`
}

// GoalKey 目标唯一键
type GoalKey struct {
	Year   int
	Region Region
	Brand  string
}

// Key 返回 (year, region, brand) 键
func (g Goal) Key() GoalKey {
	return GoalKey{Year: g.Year, Region: g.Region, Brand: g.Brand}
}
