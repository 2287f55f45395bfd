package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHannCoefficients(t *testing.T) {
	t.Parallel()

	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 0.5}, NewHann(4).Coefficients(), 1e-12)
	assert.Empty(t, NewHann(0).Coefficients())
	assert.Equal(t, 8, NewHann(8).Size())

	// periodic: the weight after the last one would restart at zero
	w := NewHann(8).Coefficients()
	assert.InDelta(t, 0, w[0], 1e-12)
	assert.InDelta(t, 1, w[4], 1e-12)
	assert.InDelta(t, w[1], w[7], 1e-12)
}

func TestHannApplyInPlace(t *testing.T) {
	t.Parallel()

	h := NewHann(4)
	frame := []float64{2, 2, 2, 2}
	assert.NoError(t, h.ApplyInPlace(frame))
	assert.InDeltaSlice(t, []float64{0, 1, 2, 1}, frame, 1e-12)

	assert.Error(t, h.ApplyInPlace([]float64{1}))
}
