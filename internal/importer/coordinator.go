// Package importer 门店数据导入：Excel / YAML → 规范化 → 记录存储
package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pipelineboard/internal/ingest"
	"pipelineboard/internal/metrics"
	"pipelineboard/internal/model"
	"pipelineboard/internal/parser"
	"pipelineboard/internal/store"
)

// ErrNoStoreSheet 工作簿中没有可识别的门店表
var ErrNoStoreSheet = errors.New("no store sheet found")

// Coordinator 导入协调器
type Coordinator struct {
	store      *store.Store
	recognizer *parser.SheetRecognizer
	logger     *zap.Logger
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		store:      st,
		recognizer: parser.NewSheetRecognizer(),
		logger:     logger,
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath string
	Source   string // 日志中记录的来源名，默认取文件名
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`      // start/info/warning/done/error
	Message   string      `json:"message"`   // 事件消息
	Data      interface{} `json:"data"`      // 附加数据
	Timestamp time.Time   `json:"timestamp"` // 时间戳
}

// ImportContext 导入上下文
type ImportContext struct {
	FilePath     string
	Source       string
	StartTime    time.Time
	Report       *parser.ImportReport
	Records      []ingest.RawStore
	Stores       []model.Store // 规范化后的结果
	ProgressChan chan ProgressEvent
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// ImportSync 同步导入，返回最终报告
func (c *Coordinator) ImportSync(opts ImportOptions) (*parser.ImportReport, error) {
	var (
		report *parser.ImportReport
		errMsg string
	)
	for evt := range c.Import(opts) {
		switch evt.Type {
		case "done":
			report, _ = evt.Data.(*parser.ImportReport)
		case "error":
			errMsg = evt.Message
		}
	}
	if errMsg != "" {
		return nil, errors.New(errMsg)
	}
	if report == nil {
		return nil, fmt.Errorf("import finished without report")
	}
	return report, nil
}

// Seed 直接写入已规范化的数据集（内置样例数据或 YAML 数据集）
func (c *Coordinator) Seed(records []model.Store, source string) (*model.ImportLog, error) {
	log, err := c.store.ReplaceStores(records, source)
	if err != nil {
		c.fail(source, len(records), 0, err)
		return nil, err
	}
	metrics.ImportsTotal.WithLabelValues("success").Inc()
	c.logger.Info("dataset loaded", zap.String("source", source), zap.Int("stores", len(records)))
	return log, nil
}

// SeedIfEmpty 库中没有门店时写入数据集
func SeedIfEmpty(st *store.Store, dataset *ingest.Dataset, source string, logger *zap.Logger) error {
	n, err := st.CountStores()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if _, err := NewCoordinator(st, logger).Seed(dataset.Stores, source); err != nil {
		return fmt.Errorf("failed to seed dataset: %w", err)
	}
	return nil
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	source := opts.Source
	if source == "" {
		source = filepath.Base(opts.FilePath)
	}

	ctx := &ImportContext{
		FilePath:     opts.FilePath,
		Source:       source,
		StartTime:    time.Now(),
		ProgressChan: progressChan,
		Report: &parser.ImportReport{
			Filename: source,
			Sheets:   []parser.ParseResult{},
		},
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "start",
		Message: "开始导入门店数据",
		Data: map[string]string{
			"filename": source,
		},
		Timestamp: time.Now(),
	})

	var err error
	switch strings.ToLower(filepath.Ext(opts.FilePath)) {
	case ".yaml", ".yml":
		err = c.readDataset(ctx)
	default:
		err = c.readWorkbook(ctx)
	}
	if err != nil {
		c.fail(source, ctx.Report.TotalRows, ctx.Report.ErrorRows, err)
		c.sendError(progressChan, err)
		return
	}

	records := ctx.Stores
	if _, err := c.store.ReplaceStores(records, source); err != nil {
		c.fail(source, ctx.Report.TotalRows, ctx.Report.ErrorRows, err)
		c.sendError(progressChan, err)
		return
	}
	metrics.ImportsTotal.WithLabelValues("success").Inc()

	ctx.Report.ImportedRows = len(records)
	ctx.Report.Duration = time.Since(ctx.StartTime)

	c.logger.Info("import finished",
		zap.String("source", source),
		zap.Int("imported_rows", ctx.Report.ImportedRows),
		zap.Int("error_rows", ctx.Report.ErrorRows),
		zap.Duration("duration", ctx.Report.Duration))

	// 发送完成事件
	c.sendFinal(progressChan, ProgressEvent{
		Type:      "done",
		Message:   "导入完成",
		Data:      ctx.Report,
		Timestamp: time.Now(),
	})
}

// readDataset 读取 YAML 数据集
func (c *Coordinator) readDataset(ctx *ImportContext) error {
	ds, err := ingest.LoadFile(ctx.FilePath)
	if err != nil {
		return err
	}
	ctx.Stores = ds.Stores
	ctx.Report.TotalRows = len(ds.Stores)
	ctx.Report.TotalSheets = 1
	ctx.Report.ImportedSheets = 1

	c.sendProgress(ctx.ProgressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("读取到 %d 条门店记录", len(ds.Stores)),
		Data: map[string]interface{}{
			"total_rows": len(ds.Stores),
		},
		Timestamp: time.Now(),
	})
	return nil
}

// readWorkbook 读取 Excel 中全部门店表
func (c *Coordinator) readWorkbook(ctx *ImportContext) error {
	file, err := excelize.OpenFile(ctx.FilePath)
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	sheetList := file.GetSheetList()
	ctx.Report.TotalSheets = len(sheetList)

	c.sendProgress(ctx.ProgressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("发现 %d 个 Sheet", len(sheetList)),
		Data: map[string]interface{}{
			"total_sheets": len(sheetList),
		},
		Timestamp: time.Now(),
	})

	storeParser := parser.NewStoreParser(file)
	for _, sheetName := range sheetList {
		records, result, err := storeParser.ParseSheet(sheetName)
		c.recordSheetResult(ctx, result)
		if err != nil {
			c.sendProgress(ctx.ProgressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("跳过 Sheet %s: %v", sheetName, err),
				Timestamp: time.Now(),
			})
			continue
		}

		ctx.Records = append(ctx.Records, records...)
		c.sendProgress(ctx.ProgressChan, ProgressEvent{
			Type:    "info",
			Message: fmt.Sprintf("Sheet \"%s\" 解析 %d 行，错误 %d 行", sheetName, result.ImportedRows, result.ErrorRows),
			Data: map[string]interface{}{
				"sheet_name": sheetName,
				"sheet_type": result.SheetType,
				"rows":       result.ImportedRows,
				"errors":     result.Errors,
			},
			Timestamp: time.Now(),
		})
	}

	if ctx.Report.ImportedSheets == 0 {
		return ErrNoStoreSheet
	}

	stores, err := ingest.NormalizeAll(ctx.Records)
	if err != nil {
		return err
	}
	ctx.Stores = stores
	return nil
}

// recordSheetResult 汇总单个 Sheet 的结果
func (c *Coordinator) recordSheetResult(ctx *ImportContext, result parser.ParseResult) {
	ctx.Report.Sheets = append(ctx.Report.Sheets, result)
	ctx.Report.TotalRows += result.TotalRows
	ctx.Report.ErrorRows += result.ErrorRows
	if result.Status == "imported" {
		ctx.Report.ImportedSheets++
	} else {
		ctx.Report.SkippedSheets++
	}
}

// fail 记录失败的导入，已有数据保持不变
func (c *Coordinator) fail(source string, totalRows, errorRows int, cause error) {
	metrics.ImportsTotal.WithLabelValues("failed").Inc()
	c.logger.Warn("import failed", zap.String("source", source), zap.Error(cause))
	if _, err := c.store.RecordFailedImport(source, totalRows, errorRows, cause.Error()); err != nil {
		c.logger.Error("record failed import", zap.Error(err))
	}
}

func (c *Coordinator) sendError(ch chan ProgressEvent, err error) {
	c.sendFinal(ch, ProgressEvent{
		Type:      "error",
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}

// sendFinal 终止事件（done/error）必须送达
func (c *Coordinator) sendFinal(ch chan ProgressEvent, event ProgressEvent) {
	ch <- event
}
