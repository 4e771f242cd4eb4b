// Package api 提供决策看板的HTTP接口。
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"planboard/internal/config"
	"planboard/internal/service/store"
	"planboard/internal/strategy"
)

// Handler API处理器
type Handler struct {
	store        *store.MemoryStore
	orchestrator *strategy.Orchestrator
	cfg          *config.AppConfig
	downloads    *exportDownloadStore
	log          zerolog.Logger
}

// NewHandler 创建API处理器
func NewHandler(st *store.MemoryStore, orch *strategy.Orchestrator, cfg *config.AppConfig, log zerolog.Logger) *Handler {
	return &Handler{
		store:        st,
		orchestrator: orch,
		cfg:          cfg,
		downloads:    newExportDownloadStore(),
		log:          log,
	}
}

// RegisterRoutes 注册API路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据集
	router.GET("/dataset", h.GetDataset)
	router.POST("/dataset/adjust", h.AdjustDataset)
	router.POST("/dataset/reset", h.ResetDataset)
	router.POST("/import", h.Import)

	// 比较矩阵与权重
	router.GET("/matrix", h.GetMatrix)
	router.PATCH("/matrix", h.UpdateMatrix)
	router.POST("/ahp", h.ComputeAHP)

	// 策略求解与结果
	router.POST("/optimize", h.Optimize)
	router.GET("/results", h.GetResults)
	router.GET("/pareto", h.GetPareto)

	// 结果导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
