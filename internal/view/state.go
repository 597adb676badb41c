// Package view 页面状态：当前标签页、列表筛选/排序、看板年份
// 状态为不可变值，只能通过 Reduce 转换
package view

import (
	"pipelineboard/internal/pipeline"
)

// Tab 标签页
type Tab string

const (
	TabProgressBoard Tab = "ProgressBoard"
	TabPipelineList  Tab = "PipelineList"
	TabMap           Tab = "Map"
)

// ParseTab 解析标签页名称
func ParseTab(v string) (Tab, bool) {
	switch t := Tab(v); t {
	case TabProgressBoard, TabPipelineList, TabMap:
		return t, true
	}
	return "", false
}

// State 页面状态
type State struct {
	Tab           Tab                 `json:"tab"`
	Filter        pipeline.FilterSpec `json:"filter"`
	Sort          pipeline.SortSpec   `json:"sort"`
	BoardYears    []int               `json:"boardYears"`
	Search        string              `json:"search"`
	SelectedStore string              `json:"selectedStore,omitempty"`
	DefaultYears  []int               `json:"defaultYears"`
}

// Initial 初始状态：进度看板，看板年份为默认年份
func Initial(defaultYears []int) State {
	return State{
		Tab:          TabProgressBoard,
		BoardYears:   cloneInts(defaultYears),
		DefaultYears: cloneInts(defaultYears),
	}
}

// ListFilter 列表实际使用的筛选条件（搜索词并入 Filter）
func (s State) ListFilter() pipeline.FilterSpec {
	f := s.Filter
	f.Years = cloneInts(f.Years)
	f.Search = s.Search
	return f
}

func (s State) clone() State {
	s.Filter.Years = cloneInts(s.Filter.Years)
	s.BoardYears = cloneInts(s.BoardYears)
	s.DefaultYears = cloneInts(s.DefaultYears)
	return s
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	return append([]int(nil), v...)
}
