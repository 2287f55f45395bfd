// Package windowing holds the analysis window applied to STFT frames.
package windowing

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/dsp/window"
)

// Hann is a periodic Hann window, the form spectral analysis expects:
// w[k] = 0.5*(1 - cos(2*pi*k/N)) for k = 0..N-1.
type Hann struct {
	weights window.Values
}

// NewHann precomputes a periodic Hann window of the given size. It is the
// symmetric window of size+1 with its last weight dropped.
func NewHann(size int) *Hann {
	if size <= 0 {
		return &Hann{weights: window.Values{}}
	}
	return &Hann{weights: window.NewValues(window.Hann, size+1)[:size]}
}

// Size returns the window length.
func (h *Hann) Size() int {
	return len(h.weights)
}

// ApplyInPlace multiplies a frame by the window.
func (h *Hann) ApplyInPlace(frame []float64) error {
	if len(frame) != len(h.weights) {
		return fmt.Errorf("frame length (%d) doesn't match window size (%d)", len(frame), len(h.weights))
	}
	h.weights.Transform(frame)
	return nil
}

// Coefficients returns a copy of the window weights.
func (h *Hann) Coefficients() []float64 {
	return slices.Clone([]float64(h.weights))
}
