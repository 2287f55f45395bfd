// Package tracking estimates one pitch per analysis frame from mono PCM.
//
// The tracker follows the peak-picking approach of librosa's piptrack: a
// centered, Hann-windowed STFT, the strongest bin inside the configured
// frequency range, and parabolic interpolation around that bin for both
// frequency and magnitude. The interpolated magnitude is reported as the
// frame confidence, so confidence grows with loudness and is not bounded
// to [0, 1].
package tracking

import (
	"context"
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/algorithms/spectral"
	"github.com/RyanBlaney/sonido-swara/algorithms/windowing"
	"github.com/RyanBlaney/sonido-swara/comparison/config"
	"github.com/RyanBlaney/sonido-swara/logging"
)

// Tracker turns PCM into pitch frames. It is safe for concurrent use.
type Tracker struct {
	config config.TrackerConfig
	stft   *spectral.STFT
	window *windowing.Hann
	minBin int
	maxBin int
	logger logging.Logger
}

// NewTracker validates cfg and precomputes the analysis window.
func NewTracker(cfg config.TrackerConfig) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolution := float64(cfg.SampleRate) / float64(cfg.WindowSize)
	minBin := max(1, int(math.Ceil(cfg.MinHz/resolution)))
	maxBin := min(cfg.WindowSize/2-1, int(math.Floor(cfg.MaxHz/resolution)))
	if minBin > maxBin {
		return nil, fmt.Errorf("%w: window of %d samples cannot resolve [%v, %v] Hz",
			config.ErrInvalidConfig, cfg.WindowSize, cfg.MinHz, cfg.MaxHz)
	}

	return &Tracker{
		config: cfg,
		stft:   spectral.NewSTFT(),
		window: windowing.NewHann(cfg.WindowSize),
		minBin: minBin,
		maxBin: maxBin,
		logger: logging.WithFields(logging.Fields{
			"component": "pitch_tracker",
		}),
	}, nil
}

// Config returns the tracker configuration.
func (t *Tracker) Config() config.TrackerConfig {
	return t.config
}

// Track returns one frame per hop. Unvoiced frames carry zero frequency and
// zero confidence. An empty signal yields no frames.
func (t *Tracker) Track(ctx context.Context, pcm []float64) ([]notes.PitchFrame, error) {
	if len(pcm) == 0 {
		return []notes.PitchFrame{}, nil
	}

	padded := spectral.CenterPad(pcm, t.config.WindowSize)
	spectrogram, err := t.stft.ComputeWithWindow(ctx, padded, t.config.WindowSize, t.config.HopLength, t.config.SampleRate, t.window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute spectrogram: %w", err)
	}

	frames := make([]notes.PitchFrame, spectrogram.TimeFrames)
	voiced := 0
	for i, magnitudes := range spectrogram.Magnitude {
		frames[i] = t.pickPeak(magnitudes, spectrogram.FreqResolution)
		frames[i].FrameIndex = i
		if frames[i].FrequencyHz > 0 {
			voiced++
		}
	}

	t.logger.Debug("Pitch tracking completed", logging.Fields{
		"samples":       len(pcm),
		"frames":        len(frames),
		"voiced_frames": voiced,
	})

	return frames, nil
}

// pickPeak finds the strongest local maximum inside [minBin, maxBin].
func (t *Tracker) pickPeak(magnitudes []float64, resolution float64) notes.PitchFrame {
	frameMax := 0.0
	for _, m := range magnitudes {
		frameMax = math.Max(frameMax, m)
	}
	if frameMax == 0 {
		return notes.PitchFrame{}
	}

	threshold := t.config.RelativeThreshold * frameMax
	peak := -1
	for bin := t.minBin; bin <= t.maxBin; bin++ {
		m := magnitudes[bin]
		if m <= threshold || m <= magnitudes[bin-1] || m < magnitudes[bin+1] {
			continue
		}
		if peak < 0 || m > magnitudes[peak] {
			peak = bin
		}
	}
	if peak < 0 {
		return notes.PitchFrame{}
	}

	shift, height := parabolicPeak(magnitudes[peak-1], magnitudes[peak], magnitudes[peak+1])
	return notes.PitchFrame{
		FrequencyHz: (float64(peak) + shift) * resolution,
		Confidence:  height,
	}
}

// parabolicPeak fits a parabola through three neighbouring bins and returns
// the vertex offset from the middle bin and the vertex height.
func parabolicPeak(left, center, right float64) (float64, float64) {
	denominator := left - 2*center + right
	if denominator == 0 {
		return 0, center
	}
	shift := 0.5 * (left - right) / denominator
	return shift, center - 0.25*(left-right)*shift
}
