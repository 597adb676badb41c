package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pipelineboard/internal/importer"
)

// Import 导入门店数据 (SSE 流式响应)
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	uploadedFile, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	switch strings.ToLower(filepath.Ext(uploadedFile.Filename)) {
	case ".xlsx", ".yaml", ".yml":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "仅支持 .xlsx / .yaml 文件"})
		return
	}

	// 保存到暂存目录
	dir := h.uploadDir
	if dir == "" {
		dir = os.TempDir()
	}
	tempFilePath := filepath.Join(dir, fmt.Sprintf("pipelineboard_import_%d_%s", time.Now().UnixNano(), filepath.Base(uploadedFile.Filename)))
	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}
	defer os.Remove(tempFilePath)

	progressChan := h.importer.Import(importer.ImportOptions{
		FilePath: tempFilePath,
		Source:   filepath.Base(uploadedFile.Filename),
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		// 不支持流式响应时汇总为一次 JSON 返回
		var events []importer.ProgressEvent
		for event := range progressChan {
			events = append(events, event)
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
		return
	}

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			h.logger.Warn("encode import event", zap.Error(err))
			continue
		}
		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
