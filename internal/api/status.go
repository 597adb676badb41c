package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pipelineboard/internal/model"
	"pipelineboard/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized   bool              `json:"initialized"`   // 是否已有门店数据
	TotalStores   int               `json:"totalStores"`   // 门店总数
	OpenHouse     int               `json:"openHouse"`     // 已开业自有品牌门店
	DatasetSource string            `json:"datasetSource"` // 当前数据来源
	LastImport    *model.ImportLog  `json:"lastImport"`    // 最近一次导入
	GoalEntries   int               `json:"goalEntries"`   // 目标条数
	CurrentYear   int               `json:"currentYear"`
	DefaultYears  []int             `json:"defaultYears"`
	Meta          map[string]string `json:"meta"` // 数据库元信息
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	stores, err := h.store.ListStores()
	if err != nil {
		respondError(c, err)
		return
	}

	openHouse := 0
	for i := range stores {
		if stores[i].IsHouse() && stores[i].Stage == model.StageOpen {
			openHouse++
		}
	}

	last, err := h.store.LastImport()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		respondError(c, err)
		return
	}

	meta, err := h.store.AllMeta()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:   len(stores) > 0,
		TotalStores:   len(stores),
		OpenHouse:     openHouse,
		DatasetSource: h.store.DatasetSource(),
		LastImport:    last,
		GoalEntries:   h.goals.Count(),
		CurrentYear:   h.year(),
		DefaultYears:  h.defaultYears,
		Meta:          meta,
	})
}
