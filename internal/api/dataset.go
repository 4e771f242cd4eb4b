package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/model"
	"planboard/internal/service/csvio"
)

// GetDataset 获取当前数据集
// GET /api/dataset
func (h *Handler) GetDataset(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dataset":     h.store.GetDataset(),
		"monthLabels": model.MonthLabels,
	})
}

// AdjustRequest 单步调整请求
type AdjustRequest struct {
	Series    model.SeriesKey `json:"series" binding:"required"`
	Month     int             `json:"month"`
	Direction int             `json:"direction" binding:"required"`
}

// AdjustDataset 单步调整某序列某月的数值
// POST /api/dataset/adjust
func (h *Handler) AdjustDataset(c *gin.Context) {
	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	value, err := h.store.AdjustSeries(req.Series, req.Month, req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"series": req.Series,
		"month":  req.Month,
		"value":  value,
	})
}

// ResetDataset 恢复内置默认数据集
// POST /api/dataset/reset
func (h *Handler) ResetDataset(c *gin.Context) {
	h.store.ResetDataset()
	h.log.Info().Msg("数据集已恢复默认值")
	c.JSON(http.StatusOK, gin.H{
		"dataset": h.store.GetDataset(),
	})
}

// Import 导入CSV数据集
// POST /api/import (multipart/form-data, 字段名 file)
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "打开上传文件失败"})
		return
	}
	defer f.Close()

	dataset, err := csvio.NewImporter().Parse(f, h.store.GetDataset())
	if err != nil {
		// 解析失败不应用任何更改，原数据集保持不变
		h.log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("CSV导入失败")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetDataset(dataset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().Str("file", fileHeader.Filename).Msg("CSV导入成功")
	c.JSON(http.StatusOK, gin.H{
		"dataset": h.store.GetDataset(),
	})
}
