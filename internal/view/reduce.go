package view

import (
	"pipelineboard/internal/pipeline"
)

// Reduce 纯函数状态转换，不修改入参
func Reduce(s State, msg Msg) State {
	next := s.clone()

	switch m := msg.(type) {
	case SearchChanged:
		next.Search = m.Query
	case BrandSelected:
		next.Filter.Brand = m.Brand
	case StageSelected:
		next.Filter.Stage = m.Stage
	case RegionSelected:
		next.Filter.Region = m.Region
	case ClassSelected:
		next.Filter.Class = m.Class
	case YearsSelected:
		if m.Board {
			next.BoardYears = cloneInts(m.Years)
		} else {
			next.Filter.Years = cloneInts(m.Years)
		}
	case SortClicked:
		next.Sort = next.Sort.Toggle(m.Key)
	case NavigateToPipelineList:
		// 进入列表前先清空已有筛选与搜索
		next.Search = ""
		next.SelectedStore = ""
		next.Sort = pipeline.SortSpec{}
		next.Filter = pipeline.FilterSpec{
			Stage:  m.Stage,
			Brand:  m.Brand,
			Years:  cloneInts(m.Years),
			Region: m.Region,
			Class:  m.Class,
		}
		next.Tab = TabPipelineList
	case TabChanged:
		if _, ok := ParseTab(string(m.Tab)); !ok {
			return next
		}
		if s.Tab == TabPipelineList && m.Tab != TabPipelineList {
			next.Filter = pipeline.FilterSpec{}
		}
		next.SelectedStore = ""
		next.Tab = m.Tab
	case StoreSelected:
		next.SelectedStore = m.ID
	case Reset:
		return Initial(s.DefaultYears)
	}
	return next
}
