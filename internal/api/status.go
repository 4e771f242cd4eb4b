package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	MonthCount    int                 `json:"monthCount"`    // 计划周期数
	Strategies    []model.StrategyKey `json:"strategies"`    // 可用策略
	SolvedCount   int                 `json:"solvedCount"`   // 已求解的策略数
	AHPComputed   bool                `json:"ahpComputed"`   // AHP权重是否已计算
	AHPConsistent bool                `json:"ahpConsistent"` // 当前权重是否通过一致性检验
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		MonthCount:  model.MonthCount,
		Strategies:  model.StrategyKeys,
		SolvedCount: len(h.store.AllResults()),
	}

	if snapshot := h.store.GetAHP(); snapshot != nil {
		resp.AHPComputed = true
		resp.AHPConsistent = snapshot.Consistent
	}

	c.JSON(http.StatusOK, resp)
}
