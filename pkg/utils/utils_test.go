package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "dízima", in: 100.0 / 3, want: 33.33},
		{name: "arredonda para cima", in: 66.666, want: 66.67},
		{name: "NaN vira zero", in: math.NaN(), want: 0},
		{name: "infinito vira zero", in: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, 10)
		assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
