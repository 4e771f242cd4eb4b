package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset_Valid(t *testing.T) {
	d := DefaultDataset()
	require.NoError(t, d.Validate())

	// 默认数据应满足逐月订单不超过产能
	for i := 0; i < MonthCount; i++ {
		assert.LessOrEqual(t, d.Orders[i], d.Capacity[i])
	}
}

func TestDataset_ValidateLengths(t *testing.T) {
	d := DefaultDataset()
	d.Cost = d.Cost[:5]
	assert.Error(t, d.Validate())
}

func TestDataset_CloneIsDeep(t *testing.T) {
	d := DefaultDataset()
	c := d.Clone()
	c.Turnover[0] = -1
	assert.NotEqual(t, d.Turnover[0], c.Turnover[0])
}

func TestDataset_Series(t *testing.T) {
	d := DefaultDataset()

	for _, key := range []SeriesKey{SeriesTurnover, SeriesCost, SeriesProductivity, SeriesOrders, SeriesCapacity} {
		s, err := d.Series(key)
		require.NoError(t, err)
		assert.Len(t, s, MonthCount)
	}

	_, err := d.Series(SeriesKey("bogus"))
	assert.Error(t, err)
}

func TestEditStep(t *testing.T) {
	assert.Equal(t, EditStepDefault, EditStep(SeriesTurnover))
	assert.Equal(t, EditStepDefault, EditStep(SeriesCapacity))
	assert.Equal(t, EditStepProductivity, EditStep(SeriesProductivity))
}

func TestDefaultPairwiseMatrix_Reciprocal(t *testing.T) {
	m := DefaultPairwiseMatrix()

	for i := 0; i < CriteriaCount; i++ {
		assert.Equal(t, 1.0, m.Cells[i][i])
		for j := 0; j < CriteriaCount; j++ {
			assert.InDelta(t, 1.0, m.Cells[i][j]*m.Cells[j][i], 5e-3)
		}
	}
}

func TestStrategyKey_Valid(t *testing.T) {
	for _, key := range StrategyKeys {
		assert.True(t, key.Valid())
		assert.NotEmpty(t, StrategyLabels[key])
	}
	assert.False(t, StrategyKey("bogus").Valid())
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range DefaultWeights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
