package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilesToKm(t *testing.T) {
	assert.InDelta(t, 1.60934, MilesToKm(1), 1e-12)
	assert.InDelta(t, 0, MilesToKm(0), 1e-12)
	assert.InDelta(t, 16.0934, MilesToKm(10), 1e-9)
}

func TestSpeedKmh(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
		d     time.Duration
		want  float64
	}{
		{"one mile in one hour", 1, time.Hour, 1.60934},
		{"ten miles in half an hour", 10, 30 * time.Minute, 32.1868},
		{"stationary", 0, 10 * time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpeedKmh(tt.miles, tt.d)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSpeedKmhRejectsNonPositiveDuration(t *testing.T) {
	_, err := SpeedKmh(3, 0)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)

	_, err = SpeedKmh(3, -time.Minute)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}
