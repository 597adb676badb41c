package pipeline

import "pipelineboard/internal/model"

// Apply 先筛选后排序；相同输入总是得到相同输出
func Apply(stores []model.Store, f FilterSpec, s SortSpec) []model.Store {
	return Sort(Filter(stores, f), s)
}
