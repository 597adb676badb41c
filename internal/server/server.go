// Package server HTTP 服务：gin 引擎、中间件与路由装配
package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pipelineboard/internal/api"
	"pipelineboard/internal/config"
	"pipelineboard/internal/goals"
	"pipelineboard/internal/ingest"
	"pipelineboard/internal/importer"
	"pipelineboard/internal/metrics"
	"pipelineboard/internal/store"
)

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	store   *store.Store
	handler *api.Handler
	logger  *zap.Logger
}

// NewServer 创建服务器：打开数据库，空库时载入样例或配置的数据集
func NewServer(cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}

	sqliteStore, err := store.New(config.DBPath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	dataset, err := ingest.LoadDataset(cfg.Data.SeedPath)
	if err != nil {
		sqliteStore.Close()
		return nil, err
	}
	if err := importer.SeedIfEmpty(sqliteStore, dataset, ingest.DatasetSource(cfg.Data.SeedPath), logger); err != nil {
		sqliteStore.Close()
		return nil, err
	}

	goalStore, err := goals.Preload(cfg.Data.GoalsPath)
	if err != nil {
		sqliteStore.Close()
		return nil, err
	}

	now := time.Now()
	handler := api.NewHandler(api.Options{
		Store:            sqliteStore,
		Goals:            goalStore,
		Logger:           logger,
		DefaultYears:     cfg.DefaultYears(now),
		CurrentYear:      cfg.CurrentYear(now),
		CompetitorBrands: dataset.CompetitorBrands,
		PreferredBrands:  dataset.PreferredBrands,
		UploadDir:        filepath.Join(dataDir, "uploads"),
	})

	s := &Server{
		router:  gin.New(),
		store:   sqliteStore,
		handler: handler,
		logger:  logger,
	}
	s.setupRoutes()
	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), requestLogger(s.logger), requestMetrics(), cors())

	api := s.router.Group("/api")
	{
		s.handler.RegisterRoutes(api)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// cors 跨域
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLogger 请求日志
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// requestMetrics 请求计数与耗时，按路由模板聚合
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler 路由（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 关闭数据库
func (s *Server) Close() error {
	return s.store.Close()
}
