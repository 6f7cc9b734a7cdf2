package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIndependentOfTickSize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		dt    float64
		ticks int
		want  int
	}{
		{"1ms", 1, 5000, 5},
		{"half ms", 0.5, 10_000, 5},
		{"7ms", 7, 1000, 7},
		{"one long tick", 3500, 1, 3},
		{"just short", 999, 1, 0},
		{"60fps", 1000.0 / 60, 600, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewScoreboard(&cfg, 0, false)
			for i := 0; i < tt.ticks; i++ {
				sb.Advance(tt.dt)
			}
			assert.Equal(t, tt.want, sb.Score())
			assert.InDelta(t, tt.dt*float64(tt.ticks), sb.Elapsed(), 1e-3)
		})
	}
}

func TestPowerMeter(t *testing.T) {
	cfg := DefaultConfig()
	sb := NewScoreboard(&cfg, 0, false)
	assert.Equal(t, cfg.Power.Start, sb.Power())

	for i := 0; i < cfg.Power.Start; i++ {
		assert.True(t, sb.SpendCharge())
	}
	assert.False(t, sb.SpendCharge())

	sb.Advance(cfg.Power.ChargeInterval)
	assert.Equal(t, 1, sb.Power())

	sb.Advance(cfg.Power.ChargeInterval * 100)
	assert.Equal(t, cfg.Power.Max, sb.Power(), "capped")
}

func TestHighScoreAbsentUntilEarned(t *testing.T) {
	cfg := DefaultConfig()
	sb := NewScoreboard(&cfg, 0, false)

	_, ok := sb.HighScore()
	assert.False(t, ok)

	sb.AddPoints(10)
	best, ok := sb.HighScore()
	assert.True(t, ok)
	assert.Equal(t, 10, best)

	stored := NewScoreboard(&cfg, 42, true)
	stored.AddPoints(10)
	best, ok = stored.HighScore()
	assert.True(t, ok)
	assert.Equal(t, 42, best)
	assert.False(t, stored.Exceeded())
}
