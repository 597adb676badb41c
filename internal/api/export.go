package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pipelineboard/internal/board"
	"pipelineboard/internal/exporter"
	"pipelineboard/internal/pipeline"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export 导出筛选后的门店列表与看板汇总
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
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

	snap, err := h.buildSnapshot(board.Query{
		Years:  h.boardYears(filter.Years),
		Brand:  filter.Brand,
		Region: filter.Region,
		Class:  filter.Class,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := h.exporter.Export(exporter.ExportOptions{Stores: rows, Snapshot: &snap})
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("pipeline_%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Sugar().Warnw("write export", "error", err)
	}
}

// boardYears 导出看板的年份：列表筛选年份优先，否则默认年份
func (h *Handler) boardYears(years []int) []int {
	if len(years) > 0 {
		return years
	}
	return append([]int(nil), h.defaultYears...)
}
