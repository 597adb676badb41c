// Package pipeline 门店列表的筛选与排序
package pipeline

import (
	"strings"

	"pipelineboard/internal/model"
)

// FilterSpec 筛选条件，各维度之间为 AND；空值或 ALL 表示不限
type FilterSpec struct {
	Brand  string `json:"brand"`
	Stage  string `json:"stage"`
	Region string `json:"region"`
	Class  string `json:"class"`
	Search string `json:"search"`
	Years  []int  `json:"years"`
}

// predicate 单个维度的判断函数
type predicate func(s *model.Store) bool

func (f FilterSpec) predicates() []predicate {
	var preds []predicate

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		preds = append(preds, func(s *model.Store) bool {
			return strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.Brand), q) ||
				strings.Contains(strings.ToLower(s.Location.City), q) ||
				strings.Contains(strings.ToLower(s.Location.Country), q)
		})
	}

	if !model.IsAll(f.Brand) {
		brand := strings.TrimSpace(f.Brand)
		preds = append(preds, func(s *model.Store) bool { return s.Brand == brand })
	}

	if !model.IsAll(f.Stage) {
		// 无法识别的阶段不匹配任何记录
		stage, known := model.ParseStage(f.Stage)
		preds = append(preds, func(s *model.Store) bool { return known && s.Stage == stage })
	}

	if region, ok := model.ParseRegion(f.Region); ok {
		preds = append(preds, func(s *model.Store) bool { return s.Region() == region })
	}

	if class, ok := model.ParseClass(f.Class); ok {
		preds = append(preds, func(s *model.Store) bool {
			c := s.Class()
			return c != model.ClassNone && c == class
		})
	}

	if len(f.Years) > 0 {
		years := yearSet(f.Years)
		preds = append(preds, func(s *model.Store) bool {
			y, ok := s.EffectiveYear()
			return ok && years[y]
		})
	}

	return preds
}

// Match 判断单条记录是否满足全部条件
func (f FilterSpec) Match(s *model.Store) bool {
	for _, p := range f.predicates() {
		if !p(s) {
			return false
		}
	}
	return true
}

// Filter 按条件筛选，保持原有顺序，不修改输入
func Filter(stores []model.Store, f FilterSpec) []model.Store {
	preds := f.predicates()
	out := make([]model.Store, 0, len(stores))
next:
	for i := range stores {
		for _, p := range preds {
			if !p(&stores[i]) {
				continue next
			}
		}
		out = append(out, stores[i])
	}
	return out
}

// IsEmpty 是否没有任何限制条件
func (f FilterSpec) IsEmpty() bool {
	return len(f.predicates()) == 0
}

func yearSet(years []int) map[int]bool {
	set := make(map[int]bool, len(years))
	for _, y := range years {
		set[y] = true
	}
	return set
}
