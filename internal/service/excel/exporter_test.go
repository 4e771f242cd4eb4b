package excel

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/model"
)

func testResult(key model.StrategyKey) *model.StrategyResult {
	plan := make([]int, model.MonthCount)
	for i := range plan {
		plan[i] = 100
	}
	return &model.StrategyResult{
		Strategy: key,
		Plan:     plan,
		Totals:   model.ObjectiveTotals{Turnover: 1, Cost: 2, Productivity: 3},
	}
}

func TestExport_SheetPerStrategy(t *testing.T) {
	dataset := model.DefaultDataset()
	results := []*model.StrategyResult{
		testResult(model.StrategyTurnover),
		testResult(model.StrategyCost),
	}

	f, err := NewExporter().Export(dataset, results)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{
		model.StrategyLabels[model.StrategyTurnover],
		model.StrategyLabels[model.StrategyCost],
	}, sheets)

	v, err := f.GetCellValue(sheets[0], "A1")
	require.NoError(t, err)
	assert.Equal(t, "月份", v)

	v, err = f.GetCellValue(sheets[0], "A2")
	require.NoError(t, err)
	assert.Equal(t, "1月", v)

	// 首月营业额贡献按报告口径换算
	v, err = f.GetCellValue(sheets[0], "C2")
	require.NoError(t, err)
	got, err := strconv.ParseFloat(v, 64)
	require.NoError(t, err)
	assert.InDelta(t, dataset.Turnover[0]*100*model.TurnoverUnitScale, got, 1e-6)

	v, err = f.GetCellValue(sheets[0], "A14")
	require.NoError(t, err)
	assert.Equal(t, "营业额合计", v)
}

func TestExport_NoResults(t *testing.T) {
	_, err := NewExporter().Export(model.DefaultDataset(), nil)
	assert.Error(t, err)
}
