package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"planboard/internal/config"
	"planboard/internal/model"
	"planboard/internal/service/csvio"
	"planboard/internal/service/excel"
)

// downloadTTL 导出文件下载令牌的有效期
const downloadTTL = 10 * time.Minute

// ExportRequest 导出请求
type ExportRequest struct {
	Strategy model.StrategyKey `json:"strategy" binding:"required"`
	Format   string            `json:"format"` // csv（默认）或 xlsx
}

// Export 导出某策略的排产明细，返回一次性下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if !req.Strategy.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的策略: " + string(req.Strategy)})
		return
	}
	format := req.Format
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不支持的导出格式: " + format})
		return
	}

	result := h.store.GetResult(req.Strategy)
	if result == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "该策略尚未求解，无法导出"})
		return
	}
	dataset := h.store.GetDataset()

	filename := fmt.Sprintf("plan-%s-%s.%s", req.Strategy, time.Now().Format("20060102-150405"), format)
	filePath := config.GetDataPath(h.cfg, "exports", filename)

	if err := h.writeExport(filePath, format, dataset, result); err != nil {
		h.log.Error().Err(err).Str("file", filePath).Msg("导出失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}

	token := h.downloads.put(filePath, filename, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
	})
}

// writeExport 按格式落盘导出文件
func (h *Handler) writeExport(filePath, format string, dataset *model.PlanDataset, result *model.StrategyResult) error {
	if format == "xlsx" {
		f, err := excel.NewExporter().Export(dataset, []*model.StrategyResult{result})
		if err != nil {
			return err
		}
		return f.SaveAs(filePath)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer out.Close()
	return csvio.NewExporter().Export(out, dataset, result)
}

// DownloadExport 按令牌下载已导出的文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}

	c.FileAttachment(item.filePath, item.filename)
}
