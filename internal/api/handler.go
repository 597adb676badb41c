// Package api HTTP 接口：门店列表、看板、目标、页面状态、导入导出
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pipelineboard/internal/exporter"
	"pipelineboard/internal/goals"
	"pipelineboard/internal/importer"
	"pipelineboard/internal/metrics"
	"pipelineboard/internal/model"
	"pipelineboard/internal/store"
	"pipelineboard/internal/view"
)

// Options 处理器依赖
type Options struct {
	Store            *store.Store
	Goals            *goals.Store
	View             *view.Dispatcher
	Logger           *zap.Logger
	DefaultYears     []int
	CurrentYear      int // 看板的"本年"，0 时取 Now 的年份
	CompetitorBrands []model.BrandDefinition
	PreferredBrands  []model.BrandDefinition
	UploadDir        string           // 上传文件暂存目录，为空时使用系统临时目录
	Now              func() time.Time // 测试注入
}

// Handler API 处理器
type Handler struct {
	store        *store.Store
	goals        *goals.Store
	view         *view.Dispatcher
	importer     *importer.Coordinator
	exporter     *exporter.Exporter
	logger       *zap.Logger
	defaultYears []int
	currentYear  int
	competitors  []model.BrandDefinition
	preferred    []model.BrandDefinition
	uploadDir    string
	now          func() time.Time
}

// NewHandler 创建 API 处理器
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	goalStore := opts.Goals
	if goalStore == nil {
		goalStore = goals.NewStore()
	}
	dispatcher := opts.View
	if dispatcher == nil {
		dispatcher = view.NewDispatcher(view.Initial(opts.DefaultYears), logger)
	}
	dispatcher.OnDispatch(func(m view.Msg) {
		metrics.ViewMessages.WithLabelValues(m.Type()).Inc()
	})
	return &Handler{
		store:        opts.Store,
		goals:        goalStore,
		view:         dispatcher,
		importer:     importer.NewCoordinator(opts.Store, logger),
		exporter:     exporter.NewExporter(),
		logger:       logger,
		defaultYears: append([]int(nil), opts.DefaultYears...),
		currentYear:  opts.CurrentYear,
		competitors:  opts.CompetitorBrands,
		preferred:    opts.PreferredBrands,
		uploadDir:    opts.UploadDir,
		now:          now,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 门店列表
	router.GET("/stores", h.ListStores)
	router.GET("/stores/:id", h.GetStore)
	router.GET("/brands", h.ListBrands)

	// 进度看板
	router.GET("/board", h.GetBoard)

	// 目标
	router.GET("/goals", h.ListGoals)
	router.GET("/goals/groups", h.ListGoalGroups)
	router.POST("/goals", h.UpsertGoals)
	router.POST("/goals/batch", h.BatchGoals)
	router.PUT("/goals", h.ReplaceGoals)
	router.DELETE("/goals", h.DeleteGoals)

	// 页面状态
	router.GET("/view", h.GetView)
	router.POST("/view/dispatch", h.DispatchView)
	router.GET("/view/list", h.ViewList)

	// 导入导出
	router.POST("/import", h.Import)
	router.GET("/export", h.Export)
}

// Goals 目标存储
func (h *Handler) Goals() *goals.Store {
	return h.goals
}

// View 页面状态分发器
func (h *Handler) View() *view.Dispatcher {
	return h.view
}

// year 看板的"本年"
func (h *Handler) year() int {
	if h.currentYear > 0 {
		return h.currentYear
	}
	return h.now().Year()
}
