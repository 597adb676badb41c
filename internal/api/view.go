package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pipelineboard/internal/pipeline"
	"pipelineboard/internal/view"
)

// DispatchRequest 页面消息
type DispatchRequest struct {
	Type    string          `json:"type" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

// ViewListResponse 当前页面状态下的门店列表
type ViewListResponse struct {
	State  view.State `json:"state"`
	Total  int        `json:"total"`
	Stores any        `json:"stores"`
}

// GetView 当前页面状态
// GET /api/view
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.view.State())
}

// DispatchView 分发页面消息，返回新状态
// POST /api/view/dispatch
func (h *Handler) DispatchView(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	msg, err := view.Decode(req.Type, req.Payload)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	c.JSON(http.StatusOK, h.view.Dispatch(msg))
}

// ViewList 按当前页面状态筛选排序的门店
// GET /api/view/list
func (h *Handler) ViewList(c *gin.Context) {
	state := h.view.State()
	stores, err := h.store.ListStores()
	if err != nil {
		respondError(c, err)
		return
	}
	rows := pipeline.Apply(stores, state.ListFilter(), state.Sort)
	c.JSON(http.StatusOK, ViewListResponse{State: state, Total: len(rows), Stores: nonNil(rows)})
}
