package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(42, 50)
	second := Generate(42, 50)

	assert.Equal(t, first.Samples(), second.Samples())
}

func TestGenerate_SampleRanges(t *testing.T) {
	h := Generate(42, 50)
	samples := h.Samples()
	require.Len(t, samples, 50)

	for i, s := range samples {
		if s.Price < 100 || s.Price >= 500 {
			t.Errorf("sample %d price %v out of [100,500)", i, s.Price)
		}
		if s.Marketing < 5000 || s.Marketing >= 50000 {
			t.Errorf("sample %d marketing %v out of [5000,50000)", i, s.Marketing)
		}

		// Attendance sits near the noiseless demand curve; the noise
		// term has sd 50, so 400 is a generous bound.
		clean := 2000 - 3.5*s.Price + 0.04*s.Marketing
		if math.Abs(s.Attendance-clean) > 400 {
			t.Errorf("sample %d attendance %v too far from demand curve %v", i, s.Attendance, clean)
		}
	}
}
