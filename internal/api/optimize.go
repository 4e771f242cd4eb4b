package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planboard/internal/model"
)

// OptimizeRequest 策略求解请求
type OptimizeRequest struct {
	Strategy model.StrategyKey `json:"strategy" binding:"required"`
}

// Optimize 运行单个优化策略并返回结果
// POST /api/optimize
// 每次求解读取当前会话快照，只覆盖该策略自己的结果槽位；
// 失败时已有结果不受影响
func (h *Handler) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if !req.Strategy.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的策略: " + string(req.Strategy)})
		return
	}

	// 模拟处理延迟，仅用于界面反馈节奏，默认关闭
	if ms := h.cfg.Business.SimulateDelayMS; ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}

	start := time.Now()
	result, err := h.orchestrator.Run(req.Strategy)
	if err != nil {
		h.log.Error().Err(err).Str("strategy", string(req.Strategy)).Msg("策略求解失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().
		Str("strategy", string(req.Strategy)).
		Dur("elapsed", time.Since(start)).
		Msg("策略求解完成")

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetResults 获取全部已求解的策略结果
// GET /api/results
func (h *Handler) GetResults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"results": h.store.AllResults(),
		"ahp":     h.store.GetAHP(),
	})
}

// GetPareto 获取帕累托散点与前沿标记
// GET /api/pareto
func (h *Handler) GetPareto(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"points": h.orchestrator.ParetoPoints(),
	})
}
