package model

import "strings"

// BrandCategory 品牌归属
type BrandCategory string

const (
	CategoryHouse      BrandCategory = "iic"
	CategoryCompetitor BrandCategory = "competitor"
	CategoryPreferred  BrandCategory = "preferred"
)

// HouseBrand 自有品牌及其简码（目标录入表格使用简码）
type HouseBrand struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// HouseBrands 自有品牌列表（展示顺序）
var HouseBrands = []HouseBrand{
	{Code: "GM", Name: "Gentle Monster"},
	{Code: "TB", Name: "Tamburins"},
	{Code: "ND", Name: "Nudake"},
	{Code: "AT", Name: "Atiissu"},
	{Code: "NF", Name: "Nuflaat"},
}

// BrandDefinition 竞品/偏好品牌定义
type BrandDefinition struct {
	Name        string `json:"name" yaml:"name"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	MarkerImage string `json:"markerImage,omitempty" yaml:"markerImage,omitempty"`
}

// BrandByCode 简码 → 品牌名
func BrandByCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, b := range HouseBrands {
		if b.Code == code {
			return b.Name, true
		}
	}
	return "", false
}

// HouseBrandOf 品牌名对应的自有品牌（包含匹配，忽略大小写）
func HouseBrandOf(brand string) (HouseBrand, bool) {
	n := strings.ToLower(strings.TrimSpace(brand))
	if n == "" {
		return HouseBrand{}, false
	}
	for _, b := range HouseBrands {
		if strings.Contains(n, strings.ToLower(b.Name)) {
			return b, true
		}
	}
	return HouseBrand{}, false
}

// IsHouseBrand 品牌名是否属于自有品牌
func IsHouseBrand(brand string) bool {
	_, ok := HouseBrandOf(brand)
	return ok
}
