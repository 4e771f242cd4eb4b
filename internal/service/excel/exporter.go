// Package excel 负责排产结果的Excel导出。
package excel

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"planboard/internal/model"
)

// Exporter Excel导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 导出排产结果到Excel，每个策略一个工作表
// 布局与CSV导出一致：12行月度明细加三行合计
func (e *Exporter) Export(dataset *model.PlanDataset, results []*model.StrategyResult) (*excelize.File, error) {
	if len(results) == 0 {
		return nil, errors.New("没有可导出的策略结果")
	}

	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for idx, result := range results {
		sheetName := model.StrategyLabels[result.Strategy]
		if sheetName == "" {
			sheetName = string(result.Strategy)
		}

		if idx == 0 {
			f.SetSheetName("Sheet1", sheetName)
		} else {
			f.NewSheet(sheetName)
		}

		// 表头
		headers := []string{"月份", "计划产量", "营业额贡献", "成本贡献", "生产率贡献"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheetName, cell, h)
		}
		f.SetRowStyle(sheetName, 1, 1, headerStyle)

		// 月度明细
		for i, x := range result.Plan {
			row := i + 2
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), model.MonthLabels[i])
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), x)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), dataset.Turnover[i]*float64(x)*model.TurnoverUnitScale)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), dataset.Cost[i]*float64(x))
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), dataset.Productivity[i]*float64(x))
		}

		// 合计
		summaryRow := len(result.Plan) + 2
		summary := [][]interface{}{
			{"营业额合计", "", result.Totals.Turnover, "", ""},
			{"成本合计", "", "", result.Totals.Cost, ""},
			{"生产率合计", "", "", "", result.Totals.Productivity},
		}
		for r, vals := range summary {
			for c, v := range vals {
				if v == "" {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, summaryRow+r)
				f.SetCellValue(sheetName, cell, v)
			}
		}

		// 改善百分比
		if result.Improvements != nil {
			improveRow := summaryRow + 4
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", improveRow), "相对基准改善")
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", improveRow), fmt.Sprintf("%.2f%%", result.Improvements.Turnover))
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", improveRow), fmt.Sprintf("%.2f%%", result.Improvements.Cost))
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", improveRow), fmt.Sprintf("%.2f%%", result.Improvements.Productivity))
		}
	}

	return f, nil
}
