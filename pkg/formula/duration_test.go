package formula

import (
	"testing"

	"Maltio-Backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"60", 60},
		{"15min", 15},
		{"20 mins", 20},
		{"1 hr", 60},
		{"1.5h", 90},
		{"2 hours", 120},
		{"7 days", 10080},
		{"1d", 1440},
		{"90 sec", 1.5},
		{"30s", 0.5},
		{"45 fortnights", 45},
		{" 10 ", 10},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseDuration_NoDigits(t *testing.T) {
	for _, in := range []string{"", "boil", "min"} {
		_, err := ParseDuration(in)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration, in)
	}
}
