package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/ahp"
	"planboard/internal/model"
)

// GetMatrix 获取比较矩阵与当前AHP快照
// GET /api/matrix
func (h *Handler) GetMatrix(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"matrix":   h.store.GetMatrix(),
		"criteria": model.CriteriaLabels,
		"ahp":      h.store.GetAHP(),
	})
}

// MatrixUpdateRequest 矩阵单元格更新请求
type MatrixUpdateRequest struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

// UpdateMatrix 更新比较矩阵单元格（自动填充互反单元格）
// PATCH /api/matrix
func (h *Handler) UpdateMatrix(c *gin.Context) {
	var req MatrixUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	matrix, err := h.store.UpdateMatrixCell(req.Row, req.Col, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matrix": matrix})
}

// ComputeAHP 由当前比较矩阵计算准则权重
// POST /api/ahp
func (h *Handler) ComputeAHP(c *gin.Context) {
	matrix := h.store.GetMatrix()

	result, err := ahp.ComputeWeights(matrix.Cells)
	if err != nil {
		// 引擎错误如实上报，是否退回等权由调用方决定
		h.log.Warn().Err(err).Msg("AHP计算失败")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot := &model.AHPSnapshot{
		Weights:    result.Weights,
		LambdaMax:  result.LambdaMax,
		CI:         result.CI,
		CR:         result.CR,
		Consistent: result.Consistent(),
	}
	h.store.SetAHP(snapshot)

	c.JSON(http.StatusOK, gin.H{"ahp": snapshot})
}
