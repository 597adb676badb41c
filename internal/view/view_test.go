package view

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pipelineboard/internal/pipeline"
)

func TestReduce_FilterMessages(t *testing.T) {
	s := Initial([]int{2025})
	s = Reduce(s, BrandSelected{Brand: "Nudake"})
	s = Reduce(s, StageSelected{Stage: "Open"})
	s = Reduce(s, RegionSelected{Region: "Japan"})
	s = Reduce(s, ClassSelected{Class: "Standalone"})
	s = Reduce(s, YearsSelected{Years: []int{2024}})
	s = Reduce(s, SearchChanged{Query: "soho"})

	want := pipeline.FilterSpec{
		Brand:  "Nudake",
		Stage:  "Open",
		Region: "Japan",
		Class:  "Standalone",
		Search: "soho",
		Years:  []int{2024},
	}
	if diff := cmp.Diff(want, s.ListFilter()); diff != "" {
		t.Errorf("ListFilter() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{2025}, s.BoardYears)
}

func TestReduce_BoardYears(t *testing.T) {
	s := Reduce(Initial([]int{2025}), YearsSelected{Years: []int{2024, 2025}, Board: true})
	assert.Equal(t, []int{2024, 2025}, s.BoardYears)
	assert.Nil(t, s.Filter.Years)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	years := []int{2025}
	s := Initial(years)
	s = Reduce(s, YearsSelected{Years: []int{2023}})

	next := Reduce(s, YearsSelected{Years: []int{2030}})
	assert.Equal(t, []int{2023}, s.Filter.Years)
	assert.Equal(t, []int{2030}, next.Filter.Years)

	years[0] = 1999
	assert.Equal(t, []int{2025}, s.BoardYears)
}

func TestReduce_SortClicked(t *testing.T) {
	s := Initial(nil)
	s = Reduce(s, SortClicked{Key: pipeline.SortName})
	assert.Equal(t, pipeline.SortSpec{Key: pipeline.SortName, Dir: pipeline.Asc}, s.Sort)
	s = Reduce(s, SortClicked{Key: pipeline.SortName})
	assert.Equal(t, pipeline.Desc, s.Sort.Dir)
	s = Reduce(s, SortClicked{Key: pipeline.SortArea})
	assert.Equal(t, pipeline.SortSpec{Key: pipeline.SortArea, Dir: pipeline.Asc}, s.Sort)
}

func TestReduce_NavigateAndLeave(t *testing.T) {
	s := Initial([]int{2025})
	s = Reduce(s, SearchChanged{Query: "tokyo"})
	s = Reduce(s, BrandSelected{Brand: "Tamburins"})

	s = Reduce(s, NavigateToPipelineList{Stage: "Signed", Brand: "Nudake", Years: []int{2025}, Region: "Korea"})
	assert.Equal(t, TabPipelineList, s.Tab)
	assert.Empty(t, s.Search)
	assert.Equal(t, pipeline.FilterSpec{Stage: "Signed", Brand: "Nudake", Years: []int{2025}, Region: "Korea"}, s.Filter)

	// 列表内切换不清空
	same := Reduce(s, TabChanged{Tab: TabPipelineList})
	assert.Equal(t, s.Filter, same.Filter)

	left := Reduce(s, TabChanged{Tab: TabProgressBoard})
	assert.Equal(t, TabProgressBoard, left.Tab)
	assert.Equal(t, pipeline.FilterSpec{}, left.Filter)
}

func TestReduce_TabChangedClearsSelection(t *testing.T) {
	s := Reduce(Initial(nil), StoreSelected{ID: "kr-open"})
	assert.Equal(t, "kr-open", s.SelectedStore)
	s = Reduce(s, TabChanged{Tab: TabMap})
	assert.Empty(t, s.SelectedStore)

	unknown := Reduce(s, TabChanged{Tab: "Nowhere"})
	assert.Equal(t, TabMap, unknown.Tab)
}

func TestReduce_Reset(t *testing.T) {
	initial := Initial([]int{2024, 2025})
	s := Reduce(initial, NavigateToPipelineList{Stage: "Open"})
	s = Reduce(s, SortClicked{Key: pipeline.SortBrand})
	s = Reduce(s, Reset{})
	if diff := cmp.Diff(initial, s); diff != "" {
		t.Errorf("Reset mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	msg, err := Decode("navigate", json.RawMessage(`{"stage":"Open","years":[2025],"region":"Korea"}`))
	require.NoError(t, err)
	assert.Equal(t, NavigateToPipelineList{Stage: "Open", Years: []int{2025}, Region: "Korea"}, msg)

	msg, err = Decode("sort", json.RawMessage(`{"key":"area"}`))
	require.NoError(t, err)
	assert.Equal(t, SortClicked{Key: pipeline.SortArea}, msg)

	msg, err = Decode("reset", nil)
	require.NoError(t, err)
	assert.Equal(t, Reset{}, msg)

	_, err = Decode("explode", nil)
	assert.ErrorIs(t, err, ErrUnknownMessage)

	_, err = Decode("years", json.RawMessage(`{"years":"x"}`))
	assert.Error(t, err)
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher(Initial([]int{2025}), zaptest.NewLogger(t))
	var mu sync.Mutex
	seen := map[string]int{}
	d.OnDispatch(func(m Msg) {
		mu.Lock()
		seen[m.Type()]++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispatch(SortClicked{Key: pipeline.SortName})
		}()
	}
	wg.Wait()

	// 第一次点击为升序，之后交替；偶数次后为降序
	assert.Equal(t, pipeline.SortSpec{Key: pipeline.SortName, Dir: pipeline.Desc}, d.State().Sort)
	assert.Equal(t, 20, seen["sort"])

	st := d.Dispatch(TabChanged{Tab: TabMap})
	assert.Equal(t, TabMap, st.Tab)
	assert.Equal(t, TabMap, d.State().Tab)
}
