package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pipelineboard/internal/board"
	"pipelineboard/internal/config"
	"pipelineboard/internal/metrics"
)

// parseBoardQuery 看板查询参数；未指定年份时使用默认年份
func (h *Handler) parseBoardQuery(c *gin.Context) board.Query {
	years := config.ParseYears(c.Query("years"))
	if len(years) == 0 && c.Query("years") != "all" {
		years = append([]int(nil), h.defaultYears...)
	}
	salesYear, _ := strconv.Atoi(c.Query("salesYear"))
	return board.Query{
		Years:     years,
		Brand:     c.Query("brand"),
		Region:    c.Query("region"),
		Class:     c.Query("class"),
		Country:   c.Query("country"),
		SalesYear: salesYear,
	}
}

// buildSnapshot 以当前数据与目标计算看板
func (h *Handler) buildSnapshot(q board.Query) (board.Snapshot, error) {
	stores, err := h.store.ListStores()
	if err != nil {
		return board.Snapshot{}, err
	}
	metrics.BoardBuilds.Inc()
	return board.Build(board.HouseStores(stores), h.goals.List(), q, h.year()), nil
}

// GetBoard 进度看板
// GET /api/board
func (h *Handler) GetBoard(c *gin.Context) {
	snap, err := h.buildSnapshot(h.parseBoardQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
