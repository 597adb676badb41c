package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"pipelineboard/internal/config"
	"pipelineboard/internal/model"
	"pipelineboard/internal/pipeline"
)

// StoreListResponse 门店列表响应
type StoreListResponse struct {
	Total  int                 `json:"total"`
	Filter pipeline.FilterSpec `json:"filter"`
	Sort   pipeline.SortSpec   `json:"sort"`
	Stores []model.Store       `json:"stores"`
}

// parseFilter 从查询参数解析筛选条件
func parseFilter(c *gin.Context) pipeline.FilterSpec {
	return pipeline.FilterSpec{
		Brand:  c.Query("brand"),
		Stage:  c.Query("stage"),
		Region: c.Query("region"),
		Class:  c.Query("class"),
		Search: c.Query("q"),
		Years:  config.ParseYears(c.Query("years")),
	}
}

// parseSort 从查询参数解析排序
func parseSort(c *gin.Context) (pipeline.SortSpec, error) {
	key, err := pipeline.ParseSortKey(c.Query("sort"))
	if err != nil {
		return pipeline.SortSpec{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	dir := pipeline.Asc
	switch strings.ToLower(c.DefaultQuery("dir", "asc")) {
	case "asc":
	case "desc":
		dir = pipeline.Desc
	default:
		return pipeline.SortSpec{}, fmt.Errorf("%w: unknown sort direction %q", errBadRequest, c.Query("dir"))
	}
	if key == pipeline.SortNone {
		return pipeline.SortSpec{}, nil
	}
	return pipeline.SortSpec{Key: key, Dir: dir}, nil
}

// ListStores 门店列表（筛选 + 排序）
// GET /api/stores
func (h *Handler) ListStores(c *gin.Context) {
	spec, err := parseSort(c)
	if err != nil {
		respondError(c, err)
		return
	}
	filter := parseFilter(c)

	stores, err := h.store.ListStores()
	if err != nil {
		respondError(c, err)
		return
	}

	rows := pipeline.Apply(stores, filter, spec)
	c.JSON(http.StatusOK, StoreListResponse{
		Total:  len(rows),
		Filter: filter,
		Sort:   spec,
		Stores: nonNil(rows),
	})
}

// GetStore 门店详情
// GET /api/stores/:id
func (h *Handler) GetStore(c *gin.Context) {
	st, err := h.store.GetStore(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// BrandsResponse 品牌列表
type BrandsResponse struct {
	House       []model.HouseBrand      `json:"house"`
	InData      []string                `json:"inData"` // 数据中出现的品牌（筛选下拉）
	Competitors []model.BrandDefinition `json:"competitors"`
	Preferred   []model.BrandDefinition `json:"preferred"`
	Regions     []model.Region          `json:"regions"`
	Stages      []model.Stage           `json:"stages"`
}

// ListBrands 品牌与筛选选项
// GET /api/brands
func (h *Handler) ListBrands(c *gin.Context) {
	stores, err := h.store.ListStores()
	if err != nil {
		respondError(c, err)
		return
	}

	seen := map[string]bool{}
	var inData []string
	for _, s := range stores {
		if s.Brand != "" && !seen[s.Brand] {
			seen[s.Brand] = true
			inData = append(inData, s.Brand)
		}
	}
	sort.Strings(inData)

	stages := append(append([]model.Stage{}, model.CoreStages...), model.ExceptionStages...)
	c.JSON(http.StatusOK, BrandsResponse{
		House:       model.HouseBrands,
		InData:      inData,
		Competitors: h.competitors,
		Preferred:   h.preferred,
		Regions:     model.Regions(),
		Stages:      stages,
	})
}

func nonNil(stores []model.Store) []model.Store {
	if stores == nil {
		return []model.Store{}
	}
	return stores
}
