// Package goals 年度/分区/品牌目标门店数的录入与维护
package goals

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"pipelineboard/internal/model"
)

// Batch 表格批量录入：某年某分区下各品牌简码的目标数
type Batch struct {
	Year    int            `json:"year" yaml:"year"`
	Region  model.Region   `json:"region" yaml:"region"`
	Targets map[string]int `json:"targets" yaml:"targets"` // 品牌简码 → 目标数
}

// ExpandBatch 展开为单条目标；目标数 <= 0 的品牌不生成条目
func ExpandBatch(b Batch) ([]model.Goal, error) {
	if b.Year <= 0 {
		return nil, fmt.Errorf("invalid goal year %d", b.Year)
	}
	region, ok := model.ParseRegion(string(b.Region))
	if !ok {
		return nil, fmt.Errorf("goal batch requires a region")
	}

	codes := make([]string, 0, len(b.Targets))
	for code := range b.Targets {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return brandOrder(codes[i]) < brandOrder(codes[j])
	})

	out := make([]model.Goal, 0, len(codes))
	for _, code := range codes {
		brand, ok := model.BrandByCode(code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBrandCode, code)
		}
		target := b.Targets[code]
		if target <= 0 {
			continue
		}
		out = append(out, model.Goal{
			ID:     uuid.NewString(),
			Year:   b.Year,
			Region: region,
			Brand:  brand,
			Target: target,
		})
	}
	return out, nil
}

func brandOrder(code string) int {
	name, ok := model.BrandByCode(code)
	if !ok {
		return len(model.HouseBrands)
	}
	for i, b := range model.HouseBrands {
		if b.Name == name {
			return i
		}
	}
	return len(model.HouseBrands)
}

// Group 按 (年份, 分区) 分组的目标，供批量删除使用
type Group struct {
	Year    int          `json:"year"`
	Region  model.Region `json:"region"`
	Total   int          `json:"total"`
	IDs     []string     `json:"ids"`
	Entries []model.Goal `json:"entries"`
}

// GroupGoals 分组：年份倒序，同年按分区固定顺序
func GroupGoals(entries []model.Goal) []Group {
	type key struct {
		year   int
		region model.Region
	}
	index := make(map[key]int)
	var groups []Group
	for _, g := range entries {
		k := key{g.Year, g.Region}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Year: g.Year, Region: g.Region})
		}
		groups[i].Total += g.Target
		groups[i].IDs = append(groups[i].IDs, g.ID)
		groups[i].Entries = append(groups[i].Entries, g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year > groups[j].Year
		}
		return model.RegionRank(groups[i].Region) < model.RegionRank(groups[j].Region)
	})
	return groups
}

// Groups 当前目标的分组视图
func (s *Store) Groups() []Group {
	return GroupGoals(s.List())
}
