package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pipelineboard/internal/goals"
	"pipelineboard/internal/metrics"
	"pipelineboard/internal/model"
)

// GoalsResponse 目标列表响应
type GoalsResponse struct {
	Total int          `json:"total"`
	Goals []model.Goal `json:"goals"`
}

// DeleteGoalsRequest 删除请求
type DeleteGoalsRequest struct {
	IDs []string `json:"ids"`
}

func (h *Handler) goalsResponse() GoalsResponse {
	list := h.goals.List()
	if list == nil {
		list = []model.Goal{}
	}
	metrics.GoalEntries.Set(float64(len(list)))
	return GoalsResponse{Total: len(list), Goals: list}
}

// ListGoals 全部目标
// GET /api/goals
func (h *Handler) ListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, h.goalsResponse())
}

// ListGoalGroups 按 (年份, 分区) 分组的目标
// GET /api/goals/groups
func (h *Handler) ListGoalGroups(c *gin.Context) {
	groups := h.goals.Groups()
	if groups == nil {
		groups = []goals.Group{}
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// UpsertGoals 新增/替换目标
// POST /api/goals
func (h *Handler) UpsertGoals(c *gin.Context) {
	var entries []model.Goal
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	entries, err := prepareGoals(entries)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.goals.Upsert(entries); err != nil {
		respondError(c, err)
		return
	}
	h.logger.Sugar().Infow("goals upserted", "count", len(entries))
	c.JSON(http.StatusOK, h.goalsResponse())
}

// BatchGoals 表格批量录入
// POST /api/goals/batch
func (h *Handler) BatchGoals(c *gin.Context) {
	var batch goals.Batch
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	entries, err := goals.ExpandBatch(batch)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	if err := h.goals.Upsert(entries); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.goalsResponse())
}

// ReplaceGoals 整体替换（编辑面板保存）
// PUT /api/goals
func (h *Handler) ReplaceGoals(c *gin.Context) {
	var entries []model.Goal
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	entries, err := prepareGoals(entries)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.goals.ReplaceAll(entries); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.goalsResponse())
}

// DeleteGoals 按 id 删除
// DELETE /api/goals
func (h *Handler) DeleteGoals(c *gin.Context) {
	var req DeleteGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 ids"})
		return
	}
	removed := h.goals.Delete(req.IDs)
	resp := h.goalsResponse()
	c.JSON(http.StatusOK, gin.H{"removed": removed, "total": resp.Total, "goals": resp.Goals})
}

// prepareGoals 校验并补全 id；品牌可传简码
func prepareGoals(entries []model.Goal) ([]model.Goal, error) {
	out := make([]model.Goal, 0, len(entries))
	for _, g := range entries {
		if g.Year <= 0 {
			return nil, fmt.Errorf("%w: invalid goal year %d", errBadRequest, g.Year)
		}
		region, ok := model.ParseRegion(string(g.Region))
		if !ok {
			return nil, fmt.Errorf("%w: goal requires a region", errBadRequest)
		}
		g.Region = region
		g.Brand = strings.TrimSpace(g.Brand)
		if name, ok := model.BrandByCode(g.Brand); ok {
			g.Brand = name
		}
		if g.Brand == "" {
			return nil, fmt.Errorf("%w: goal requires a brand", errBadRequest)
		}
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		out = append(out, g)
	}
	return out, nil
}
