package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pipelineboard/internal/goals"
	"pipelineboard/internal/store"
	"pipelineboard/internal/view"
)

// errBadRequest 请求参数错误
var errBadRequest = errors.New("bad request")

// respondError 错误映射为 HTTP 状态码
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, goals.ErrNegativeTarget),
		errors.Is(err, goals.ErrUnknownBrandCode),
		errors.Is(err, view.ErrUnknownMessage):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
