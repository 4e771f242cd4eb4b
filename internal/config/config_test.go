package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 20262, cfg.Server.Port)
	assert.False(t, cfg.Server.DevMode)
	assert.Equal(t, "data", cfg.Data.DataDir)
	assert.Equal(t, 0, cfg.Business.SimulateDelayMS)
}

func TestCeilings_Fallback(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMonthlyCeilings, cfg.Ceilings())

	custom := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	cfg.Business.MonthlyCeilings = custom
	assert.Equal(t, custom, cfg.Ceilings())
}

func TestDefaultMonthlyCeilings_StrictlyAscending(t *testing.T) {
	assert.NoError(t, validateCeilings(DefaultMonthlyCeilings))
}

func TestValidateCeilings(t *testing.T) {
	assert.NoError(t, validateCeilings(nil))
	assert.NoError(t, validateCeilings([]float64{}))

	assert.Error(t, validateCeilings([]float64{1, 2, 3}))

	bad := append([]float64(nil), DefaultMonthlyCeilings...)
	bad[5] = bad[4]
	assert.Error(t, validateCeilings(bad))

	bad[5] = -1
	assert.Error(t, validateCeilings(bad))
}

func TestIsPortSpecifiedInToml(t *testing.T) {
	assert.True(t, isPortSpecifiedInToml([]byte("[server]\nport = 9000\n")))
	assert.False(t, isPortSpecifiedInToml([]byte("[server]\ndev_mode = true\n")))
	assert.False(t, isPortSpecifiedInToml([]byte("")))
	assert.False(t, isPortSpecifiedInToml([]byte("not valid toml ===")))
}
