package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelineboard/internal/model"
)

func scenarioStores() []model.Store {
	return []model.Store{
		{ID: "kr-open", Brand: "A", Stage: model.StageOpen, OpenDate: "2024-04-01",
			Location: model.Location{Country: "Korea"}},
		{ID: "kr-signed", Brand: "A", Stage: model.StageSigned, OpenDate: "2025-10-01",
			Location: model.Location{Country: "Korea"}},
		{ID: "jp-open", Brand: "B", Stage: model.StageOpen, OpenDate: "2024-07-01",
			Location: model.Location{Country: "Japan"}},
	}
}

func findRegion(t *testing.T, rows []RegionProgress, r model.Region) RegionProgress {
	t.Helper()
	for _, row := range rows {
		if row.Region == r {
			return row
		}
	}
	t.Fatalf("region %s missing", r)
	return RegionProgress{}
}

func TestRegionBreakdown_KoreaScenario(t *testing.T) {
	goals := []model.Goal{{ID: "g1", Year: 2024, Region: model.RegionKorea, Brand: "A", Target: 5}}

	rows := RegionBreakdown(scenarioStores(), []int{2024}, goals, "")
	kr := findRegion(t, rows, model.RegionKorea)
	assert.Equal(t, RegionProgress{Region: model.RegionKorea, OpenCount: 1, Target: 5, Remaining: 4, Progress: 20}, kr)

	jp := findRegion(t, rows, model.RegionJapan)
	assert.Equal(t, 1, jp.OpenCount)
	assert.Equal(t, 0, jp.Target)
	assert.Equal(t, 0, jp.Progress)
	assert.Len(t, rows, len(model.RegionTable))
}

func TestRegionBreakdown_BrandFilterOnGoals(t *testing.T) {
	goals := []model.Goal{
		{Year: 2024, Region: model.RegionKorea, Brand: "A", Target: 5},
		{Year: 2024, Region: model.RegionKorea, Brand: "B", Target: 3},
		{Year: 2025, Region: model.RegionKorea, Brand: "A", Target: 7},
	}

	all := findRegion(t, RegionBreakdown(scenarioStores(), []int{2024}, goals, "ALL"), model.RegionKorea)
	assert.Equal(t, 8, all.Target)

	onlyB := findRegion(t, RegionBreakdown(scenarioStores(), []int{2024}, goals, "B"), model.RegionKorea)
	assert.Equal(t, 3, onlyB.Target)

	both := findRegion(t, RegionBreakdown(scenarioStores(), []int{2024, 2025}, goals, ""), model.RegionKorea)
	assert.Equal(t, 15, both.Target)
}

func TestProgressBounds(t *testing.T) {
	assert.Equal(t, 0, Progress(3, 0))
	assert.Equal(t, 0, Progress(0, 0))
	assert.Equal(t, 150, Progress(3, 2))
	assert.Equal(t, 33, Progress(1, 3))
	assert.Equal(t, 67, Progress(2, 3))
	assert.Equal(t, 0, Remaining(6, 5))
	assert.Equal(t, 2, Remaining(3, 5))

	for open := 0; open < 10; open++ {
		for target := 0; target < 10; target++ {
			p := Progress(open, target)
			assert.GreaterOrEqual(t, p, 0)
			if target == 0 {
				assert.Equal(t, 0, p)
			}
		}
	}
}

func TestStageCounts_AliasCountedUnderCanonicalStage(t *testing.T) {
	stores := []model.Store{
		{ID: "c", Brand: "A", Stage: model.NormalizeStage("Contract"), OpenDate: "2025-01-01"},
		{ID: "n", Brand: "A", Stage: model.NormalizeStage("Negotiation"), OpenDate: "2025-01-01"},
		{ID: "x", Brand: "A", Stage: model.NormalizeStage("Close"), OpenDate: "2025-01-01"},
	}
	sum := StageCounts(stores, nil)

	counts := map[model.Stage]int{}
	for _, sc := range sum.Stages {
		counts[sc.Stage] = sc.Count
	}
	assert.Equal(t, 1, counts[model.StageSigned])
	_, hasContract := counts[model.Stage("Contract")]
	assert.False(t, hasContract)
	assert.Equal(t, 1, sum.Unclassified)
	assert.Equal(t, 1, sum.Exceptions[model.StageClosed])
	assert.Equal(t, map[string]int{"A": 1}, sum.Stages[2].BrandCounts)
}

func TestStageCounts_YearBoundedExcludesUndated(t *testing.T) {
	stores := []model.Store{
		{ID: "dated", Stage: model.StagePlanned, OpenDate: "2026-01-01"},
		{ID: "undated", Stage: model.StagePlanned},
		{ID: "open-no-date", Stage: model.StageOpen, ContractDate: "2026-01-01"},
	}
	bounded := StageCounts(stores, []int{2026})
	assert.Equal(t, 1, bounded.Stages[0].Count)
	assert.Equal(t, 0, bounded.Stages[4].Count)

	unbounded := StageCounts(stores, nil)
	assert.Equal(t, 2, unbounded.Stages[0].Count)
	assert.Equal(t, 1, unbounded.Stages[4].Count)
}

func TestYearSeries(t *testing.T) {
	stores := []model.Store{
		{ID: "o2022", Stage: model.StageOpen, OpenDate: "2022-01-01"},
		{ID: "o2024", Stage: model.StageOpen, OpenDate: "2024-05-01"},
		{ID: "c2025", Stage: model.StageConstruction, OpenDate: "2025-03-01"},
		{ID: "s2025", Stage: model.StageSigned, ContractDate: "2025-08-01"},
		{ID: "undated", Stage: model.StageOpen},
	}
	goals := []model.Goal{
		{Year: 2025, Region: model.RegionKorea, Brand: "A", Target: 4},
		{Year: 2025, Region: model.RegionJapan, Brand: "A", Target: 1},
	}

	series := YearSeries(stores, []int{2025, 2024, 2025}, goals, "", "")
	require.Len(t, series, 2)

	assert.Equal(t, YearPoint{Year: 2024, PreviouslyOpen: 1, OpenedThisYear: 1, TargetTotal: 1}, series[0])
	assert.Equal(t, YearPoint{
		Year: 2025, PreviouslyOpen: 2, Construction: 1, Signed: 1, Target: 5, TargetTotal: 7,
	}, series[1])

	korea := YearSeries(stores, []int{2025}, goals, model.RegionKorea, "")
	assert.Equal(t, 4, korea[0].Target)
	assert.Equal(t, 6, korea[0].TargetTotal)
}

func TestBrandSummary(t *testing.T) {
	stores := []model.Store{
		{ID: "1", Brand: "Gentle Monster", ChannelType: "FS", Stage: model.StageOpen, OpenDate: "2026-02-01",
			Location: model.Location{Country: "Japan"}},
		{ID: "2", Brand: "Gentle Monster", ChannelType: "Mall", Stage: model.StageOpen, OpenDate: "2020-02-01",
			Location: model.Location{Country: "Japan"}},
		{ID: "3", Brand: "Gentle Monster", ChannelType: "FS", Stage: model.StageSigned,
			Location: model.Location{Country: "USA"}},
		{ID: "4", Brand: "Tamburins", ChannelType: "FS", Stage: model.StageClosed},
		{ID: "5", Brand: "Other Co", ChannelType: "FS", Stage: model.StageOpen},
	}
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	stats := BrandSummary(stores, Query{Region: "Korea", Brand: "Tamburins"}, now.Year())
	require.Len(t, stats, len(model.HouseBrands))
	assert.Equal(t, BrandStat{Brand: "Gentle Monster", Open: 2, NewThisYear: 1, Pipeline: 1}, stats[0])
	assert.Equal(t, BrandStat{Brand: "Tamburins"}, stats[1])

	standalone := BrandSummary(stores, Query{Class: "Standalone", Country: "japan"}, now.Year())
	assert.Equal(t, BrandStat{Brand: "Gentle Monster", Open: 1, NewThisYear: 1}, standalone[0])
}

func TestBrandSummary_BrandContainment(t *testing.T) {
	stores := []model.Store{
		{ID: "1", Brand: "GENTLE MONSTER", Stage: model.StageOpen, OpenDate: "2019-01-01"},
		{ID: "2", Brand: "Gentle Monster Haus", Stage: model.StageSigned},
		{ID: "3", Brand: "tamburins", Stage: model.StageOpen, OpenDate: "2026-02-01"},
	}
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	stats := BrandSummary(stores, Query{}, now.Year())
	assert.Equal(t, BrandStat{Brand: "Gentle Monster", Open: 1, Pipeline: 1}, stats[0])
	assert.Equal(t, BrandStat{Brand: "Tamburins", Open: 1, NewThisYear: 1}, stats[1])
}

func TestKPIs(t *testing.T) {
	stores := []model.Store{
		{Stage: model.StageOpen, Financial: &model.Financial{Currency: "KRW",
			YearlySales: []model.YearlySales{{Year: 2025, Amount: 100}}}},
		{Stage: model.StageOpen, Financial: &model.Financial{Currency: "KRW",
			YearlySales: []model.YearlySales{{Year: 2025, Amount: 50}, {Year: 2024, Amount: 1}}}},
		{Stage: model.StageOpen, Financial: &model.Financial{Currency: "JPY",
			YearlySales: []model.YearlySales{{Year: 2025, Amount: 7}}}},
		{Stage: model.StagePlanned},
		{Stage: model.StageClosed},
		{Stage: model.StageUnclassified},
	}
	k := KPIs(stores, 2025)
	assert.Equal(t, 3, k.TotalOpen)
	assert.Equal(t, 1, k.TotalPipeline)
	assert.Equal(t, map[string]float64{"KRW": 150, "JPY": 7}, k.YearlySales)
}

func TestBuild_ComposesSnapshot(t *testing.T) {
	goals := []model.Goal{{Year: 2024, Region: model.RegionKorea, Brand: "A", Target: 5}}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	snap := Build(scenarioStores(), goals, Query{Years: []int{2024}, Region: "Korea"}, now.Year())
	assert.Equal(t, 2, snap.Total)

	kr := findRegion(t, snap.Regions, model.RegionKorea)
	assert.Equal(t, 20, kr.Progress)
	jp := findRegion(t, snap.Regions, model.RegionJapan)
	assert.Equal(t, 1, jp.OpenCount)

	require.Len(t, snap.Series, 1)
	assert.Equal(t, 5, snap.Series[0].Target)
	assert.Equal(t, 1, snap.KPI.TotalOpen)
	assert.Equal(t, 2024, snap.KPI.SalesYear)
}

func TestBuild_SalesYear(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	snap := Build(scenarioStores(), nil, Query{SalesYear: 2023, Years: []int{2024}}, now.Year())
	assert.Equal(t, 2023, snap.KPI.SalesYear)

	snap = Build(scenarioStores(), nil, Query{}, now.Year())
	assert.Equal(t, 2026, snap.KPI.SalesYear)
}
