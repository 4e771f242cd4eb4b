package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"planboard/internal/api"
	"planboard/internal/config"
	"planboard/internal/service/store"
	"planboard/internal/solver"
	"planboard/internal/strategy"
)

// indexPage 生产模式下的极简首页（前端构建产物由独立流程部署）
const indexPage = `<!DOCTYPE html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>Planboard - 生产计划决策看板</title></head>
<body>
<h1>Planboard</h1>
<p>生产计划决策看板服务已启动，API 位于 <code>/api</code>。</p>
</body>
</html>
`

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	api    *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, log zerolog.Logger) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	memStore := store.NewMemoryStore()

	sv, err := solver.New(cfg.Ceilings())
	if err != nil {
		return nil, err
	}
	orchestrator := strategy.NewOrchestrator(memStore, sv)

	apiHandler := api.NewHandler(memStore, orchestrator, cfg, log)

	s := &Server{
		router: gin.Default(),
		store:  memStore,
		api:    apiHandler,
	}

	s.setupRoutes(devMode)

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 生产模式：提供极简首页
		s.router.GET("/", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
		})
		s.router.NoRoute(func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}

// Router 获取路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}
