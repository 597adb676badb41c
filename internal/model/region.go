package model

import "strings"

// Region 粗粒度地理分区
type Region string

const (
	RegionKorea         Region = "Korea"
	RegionJapan         Region = "Japan"
	RegionChina         Region = "China"
	RegionSoutheastAsia Region = "Southeast Asia"
	RegionAmericas      Region = "Americas"
	RegionEurope        Region = "Europe"
	RegionMiddleEast    Region = "Middle East"
	RegionOceania       Region = "Oceania"
	RegionOther         Region = "Other"
)

// RegionRule 分区关键字规则
type RegionRule struct {
	Region   Region
	Keywords []string
}

// RegionTable 国家 → 分区的关键字表，按顺序匹配，第一条命中即返回
var RegionTable = []RegionRule{
	{RegionKorea, []string{"South Korea", "Korea", "Seoul", "Busan", "Daegu", "Incheon"}},
	{RegionJapan, []string{"Japan", "Tokyo", "Osaka", "Kyoto", "Fukuoka", "Nagoya"}},
	{RegionChina, []string{"China", "Hong Kong", "Taiwan", "Macau", "Shanghai", "Beijing", "Chengdu"}},
	{RegionSoutheastAsia, []string{"Singapore", "Thailand", "Vietnam", "Malaysia", "Indonesia", "Philippines", "Bangkok", "Ho Chi Minh"}},
	{RegionAmericas, []string{"USA", "Canada", "Mexico", "United States", "America", "New York", "Los Angeles", "Miami"}},
	{RegionEurope, []string{"UK", "France", "Germany", "Italy", "Spain", "Europe", "United Kingdom", "London", "Paris", "Berlin", "Milan"}},
	{RegionMiddleEast, []string{"UAE", "Saudi Arabia", "Dubai", "Middle East", "Qatar", "Kuwait"}},
	{RegionOceania, []string{"Australia", "New Zealand", "Sydney", "Melbourne"}},
	{RegionOther, []string{"India", "Brazil", "Argentina", "South Africa", "Russia", "Unknown"}},
}

// Regions 全部分区（与 RegionTable 顺序一致）
func Regions() []Region {
	out := make([]Region, 0, len(RegionTable))
	for _, r := range RegionTable {
		out = append(out, r.Region)
	}
	return out
}

// CountryToRegion 国家名映射到分区，未命中时归入 Other
func CountryToRegion(country string) Region {
	c := strings.ToLower(strings.TrimSpace(country))
	if c == "" {
		return RegionOther
	}
	for _, rule := range RegionTable {
		for _, kw := range rule.Keywords {
			if strings.Contains(c, strings.ToLower(kw)) {
				return rule.Region
			}
		}
	}
	return RegionOther
}

// RegionRank 分区在固定地理顺序中的位置，未知分区排在最后
func RegionRank(r Region) int {
	for i, rule := range RegionTable {
		if rule.Region == r {
			return i
		}
	}
	return len(RegionTable)
}

// ParseRegion 按分区名（忽略大小写）解析，ALL/空 返回 ok=false
func ParseRegion(label string) (Region, bool) {
	if IsAll(label) {
		return "", false
	}
	label = strings.TrimSpace(label)
	for _, rule := range RegionTable {
		if strings.EqualFold(string(rule.Region), label) {
			return rule.Region, true
		}
	}
	return Region(label), true
}
