package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"planboard/internal/model"
)

// 导出表头（与前端下载列一致）
var exportHeader = []string{
	"Month", "PlannedProduction",
	"TurnoverContribution", "CostContribution", "ProductivityContribution",
}

// Exporter 排产结果CSV导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 导出单个策略的排产明细
// 每月一行，逐项贡献按报告口径（营业额已换算为元），末尾三行为三项合计，
// 全部数值固定两位小数
func (e *Exporter) Export(w io.Writer, dataset *model.PlanDataset, result *model.StrategyResult) error {
	if len(result.Plan) != model.MonthCount {
		return fmt.Errorf("排产方案长度为 %d，应为 %d", len(result.Plan), model.MonthCount)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for i, x := range result.Plan {
		row := []string{
			model.MonthLabels[i],
			fmt.Sprintf("%.2f", float64(x)),
			fmt.Sprintf("%.2f", dataset.Turnover[i]*float64(x)*model.TurnoverUnitScale),
			fmt.Sprintf("%.2f", dataset.Cost[i]*float64(x)),
			fmt.Sprintf("%.2f", dataset.Productivity[i]*float64(x)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	summary := [][]string{
		{"TotalTurnover", "", fmt.Sprintf("%.2f", result.Totals.Turnover), "", ""},
		{"TotalCost", "", "", fmt.Sprintf("%.2f", result.Totals.Cost), ""},
		{"TotalProductivity", "", "", "", fmt.Sprintf("%.2f", result.Totals.Productivity)},
	}
	for _, row := range summary {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
