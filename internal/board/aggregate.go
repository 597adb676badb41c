package board

import (
	"math"
	"sort"
	"strings"

	"pipelineboard/internal/model"
	"pipelineboard/internal/pipeline"
)

// inYears years 为空时不限；非空时年份缺失的记录不计入
func inYears(year int, ok bool, years map[int]bool) bool {
	if len(years) == 0 {
		return true
	}
	return ok && years[year]
}

func yearSet(years []int) map[int]bool {
	set := make(map[int]bool, len(years))
	for _, y := range years {
		set[y] = true
	}
	return set
}

// StageCounts 各阶段门店数；每条记录按自身阶段的有效日期规则判断年份
func StageCounts(stores []model.Store, years []int) StageSummary {
	ys := yearSet(years)
	counts := make(map[model.Stage]*StageCount, len(model.CoreStages))
	out := StageSummary{
		Stages:     make([]StageCount, 0, len(model.CoreStages)),
		Exceptions: make(map[model.Stage]int, len(model.ExceptionStages)),
	}
	for _, st := range model.CoreStages {
		out.Stages = append(out.Stages, StageCount{Stage: st, BrandCounts: map[string]int{}})
	}
	for i := range out.Stages {
		counts[out.Stages[i].Stage] = &out.Stages[i]
	}
	for _, st := range model.ExceptionStages {
		out.Exceptions[st] = 0
	}

	for i := range stores {
		s := &stores[i]
		if !inYears(yearOf(s), hasYear(s), ys) {
			continue
		}
		if c, ok := counts[s.Stage]; ok {
			c.Count++
			c.BrandCounts[s.Brand]++
			continue
		}
		if s.Stage == model.StageUnclassified {
			out.Unclassified++
			continue
		}
		out.Exceptions[s.Stage]++
	}
	return out
}

func yearOf(s *model.Store) int {
	y, _ := s.EffectiveYear()
	return y
}

func hasYear(s *model.Store) bool {
	_, ok := s.EffectiveYear()
	return ok
}

// MatchGoals 汇总匹配的目标：年份在 years 中（为空时不限）、分区相等（region 为空时不限），
// 品牌只在 brand 非空时参与匹配
func MatchGoals(goals []model.Goal, years []int, region model.Region, brand string) int {
	ys := yearSet(years)
	total := 0
	for _, g := range goals {
		if len(ys) > 0 && !ys[g.Year] {
			continue
		}
		if region != "" && g.Region != region {
			continue
		}
		if brand != "" && g.Brand != brand {
			continue
		}
		total += g.Target
	}
	return total
}

// Progress 达成率（四舍五入的百分比），目标为 0 时返回 0
func Progress(open, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(open) / float64(target) * 100))
}

// Remaining 距目标还差的门店数，不小于 0
func Remaining(open, target int) int {
	if target > open {
		return target - open
	}
	return 0
}

// RegionBreakdown 按分区统计所选年份内已开业门店数与目标
func RegionBreakdown(stores []model.Store, years []int, goals []model.Goal, brand string) []RegionProgress {
	ys := yearSet(years)
	openByRegion := make(map[model.Region]int)
	for i := range stores {
		s := &stores[i]
		if s.Stage != model.StageOpen {
			continue
		}
		y, ok := s.OpenYear()
		if !inYears(y, ok, ys) {
			continue
		}
		openByRegion[s.Region()]++
	}

	brand = brandFilter(brand)
	out := make([]RegionProgress, 0, len(model.RegionTable))
	for _, r := range model.Regions() {
		open := openByRegion[r]
		target := MatchGoals(goals, years, r, brand)
		out = append(out, RegionProgress{
			Region:    r,
			OpenCount: open,
			Target:    target,
			Remaining: Remaining(open, target),
			Progress:  Progress(open, target),
		})
	}
	return out
}

// BrandSummary 自有品牌汇总；只受分类与国家筛选影响，不受分区/阶段/品牌筛选影响
func BrandSummary(stores []model.Store, q Query, currentYear int) []BrandStat {
	class, classOK := model.ParseClass(q.Class)
	country := strings.TrimSpace(q.Country)
	if model.IsAll(country) {
		country = ""
	}
	stats := make([]BrandStat, 0, len(model.HouseBrands))
	index := make(map[string]int, len(model.HouseBrands))
	for i, b := range model.HouseBrands {
		stats = append(stats, BrandStat{Brand: b.Name})
		index[b.Name] = i
	}

	for i := range stores {
		s := &stores[i]
		if classOK && (s.Class() == model.ClassNone || s.Class() != class) {
			continue
		}
		if country != "" && !strings.EqualFold(s.Location.Country, country) {
			continue
		}
		hb, ok := model.HouseBrandOf(s.Brand)
		if !ok {
			continue
		}
		idx := index[hb.Name]
		switch {
		case s.Stage == model.StageOpen:
			stats[idx].Open++
			if y, ok := s.OpenYear(); ok && y == currentYear {
				stats[idx].NewThisYear++
			}
		case s.Stage.InPipeline():
			stats[idx].Pipeline++
		}
	}
	return stats
}

// YearSeries 逐年堆叠数据，年份升序
func YearSeries(stores []model.Store, years []int, goals []model.Goal, region model.Region, brand string) []YearPoint {
	sorted := append([]int(nil), years...)
	sort.Ints(sorted)
	sorted = dedupInts(sorted)
	brand = brandFilter(brand)

	out := make([]YearPoint, 0, len(sorted))
	for _, year := range sorted {
		p := YearPoint{Year: year}
		for i := range stores {
			s := &stores[i]
			switch s.Stage {
			case model.StageOpen:
				y, ok := s.OpenYear()
				if !ok {
					continue
				}
				if y < year {
					p.PreviouslyOpen++
				} else if y == year {
					p.OpenedThisYear++
				}
			case model.StageConstruction:
				if y, ok := s.TargetYear(); ok && y == year {
					p.Construction++
				}
			case model.StageSigned:
				if y, ok := s.TargetYear(); ok && y == year {
					p.Signed++
				}
			}
		}
		p.Target = MatchGoals(goals, []int{year}, region, brand)
		p.TargetTotal = p.Target + p.PreviouslyOpen
		out = append(out, p)
	}
	return out
}

// KPIs 顶部卡片：已开业总数、推进中总数、指定年份各币种实际销售额
func KPIs(stores []model.Store, salesYear int) KPI {
	k := KPI{SalesYear: salesYear, YearlySales: map[string]float64{}}
	for i := range stores {
		s := &stores[i]
		switch {
		case s.Stage == model.StageOpen:
			k.TotalOpen++
		case s.Stage.InPipeline():
			k.TotalPipeline++
		}
		if amount, ok := s.Financial.SalesFor(salesYear); ok {
			k.YearlySales[s.Financial.Currency] += amount
		}
	}
	return k
}

// Build 组合看板全部数据；currentYear 为看板的"本年"
// stores 应为自有品牌门店全集；分区/分类/国家/品牌筛选在这里统一应用
func Build(stores []model.Store, goals []model.Goal, q Query, currentYear int) Snapshot {
	// 分区明细本身按分区展开，不应用分区筛选
	unregioned := filterCountry(pipeline.Filter(stores, pipeline.FilterSpec{
		Brand: q.Brand,
		Class: q.Class,
	}), q.Country)
	scoped := pipeline.Filter(unregioned, pipeline.FilterSpec{Region: q.Region})

	region, _ := model.ParseRegion(q.Region)
	salesYear := q.SalesYear
	switch {
	case salesYear > 0:
	case len(q.Years) > 0:
		salesYear = maxInt(q.Years)
	default:
		salesYear = currentYear
	}

	return Snapshot{
		Query:   q,
		Total:   len(scoped),
		Stages:  StageCounts(scoped, q.Years),
		Regions: RegionBreakdown(unregioned, q.Years, goals, q.Brand),
		Brands:  BrandSummary(stores, q, currentYear),
		Series:  YearSeries(scoped, q.Years, goals, region, q.Brand),
		KPI:     KPIs(scoped, salesYear),
	}
}

func filterCountry(stores []model.Store, country string) []model.Store {
	country = strings.TrimSpace(country)
	if model.IsAll(country) {
		return stores
	}
	out := make([]model.Store, 0, len(stores))
	for _, s := range stores {
		if strings.EqualFold(s.Location.Country, country) {
			out = append(out, s)
		}
	}
	return out
}

func brandFilter(brand string) string {
	if model.IsAll(brand) {
		return ""
	}
	return strings.TrimSpace(brand)
}

func dedupInts(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func maxInt(vs []int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// HouseStores 自有品牌门店子集（保持原顺序）
func HouseStores(stores []model.Store) []model.Store {
	out := make([]model.Store, 0, len(stores))
	for i := range stores {
		if stores[i].IsHouse() {
			out = append(out, stores[i])
		}
	}
	return out
}
