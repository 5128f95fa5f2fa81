package clock

import (
	"testing"

	"vetclinic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsConfiguredZone(t *testing.T) {
	cfg := &config.Config{Clinic: &config.ClinicConfig{Timezone: "America/Bogota"}}

	clk, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "America/Bogota", clk.Location().String())
	assert.Equal(t, clk.Location(), clk.Now().Location())
}

func TestNew_RejectsUnknownZone(t *testing.T) {
	cfg := &config.Config{Clinic: &config.ClinicConfig{Timezone: "Marte/Olympus"}}

	_, err := New(cfg)
	require.Error(t, err)
}

func TestToday_IsMidnightLocal(t *testing.T) {
	cfg := &config.Config{Clinic: &config.ClinicConfig{Timezone: "America/Bogota"}}

	clk, err := New(cfg)
	require.NoError(t, err)

	today := clk.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, clk.Location(), today.Location())
}
