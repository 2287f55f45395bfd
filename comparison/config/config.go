package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ComparisonConfig holds the constants a comparison reads. Values are
// passed explicitly into each comparator and never changed afterwards.
type ComparisonConfig struct {
	ConfidenceThreshold float64 `json:"confidence_threshold"` // frames at or below are dropped
	ReferenceHz         float64 `json:"reference_hz"`         // A4 tuning reference
	TonicHz             float64 `json:"tonic_hz"`             // Sa, for swara transliteration
	SampleRate          int     `json:"sample_rate"`          // of the tracked audio
	HopLength           int     `json:"hop_length"`           // samples between frames
}

// TrackerConfig configures the spectral pitch tracker.
type TrackerConfig struct {
	SampleRate int     `json:"sample_rate"`
	WindowSize int     `json:"window_size"`
	HopLength  int     `json:"hop_length"`
	MinHz      float64 `json:"min_hz"`
	MaxHz      float64 `json:"max_hz"`

	// Peaks weaker than RelativeThreshold * the frame maximum are unvoiced
	RelativeThreshold float64 `json:"relative_threshold"`
}

// DefaultComparisonConfig returns the defaults: 0.1 confidence threshold,
// A4 = 440 Hz, Sa = middle C, 22.05 kHz audio with a 512-sample hop.
func DefaultComparisonConfig() ComparisonConfig {
	return ComparisonConfig{
		ConfidenceThreshold: 0.1,
		ReferenceHz:         440.0,
		TonicHz:             261.63,
		SampleRate:          22050,
		HopLength:           512,
	}
}

// DefaultTrackerConfig returns tracker settings covering C2..C7.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		SampleRate:        22050,
		WindowSize:        2048,
		HopLength:         512,
		MinHz:             65.41,
		MaxHz:             2093.0,
		RelativeThreshold: 0.1,
	}
}

// TrackerConfigFor derives tracker settings sharing the comparison's
// sample rate and hop, so frame times line up with the contour axis.
func TrackerConfigFor(cfg ComparisonConfig) TrackerConfig {
	tc := DefaultTrackerConfig()
	tc.SampleRate = cfg.SampleRate
	tc.HopLength = cfg.HopLength
	return tc
}

// Validate reports the first invalid field.
func (c ComparisonConfig) Validate() error {
	if math.IsNaN(c.ConfidenceThreshold) || math.IsInf(c.ConfidenceThreshold, 0) {
		return fmt.Errorf("%w: confidence threshold must be finite: %v", ErrInvalidConfig, c.ConfidenceThreshold)
	}
	if !isPositive(c.ReferenceHz) {
		return fmt.Errorf("%w: reference frequency must be positive: %v", ErrInvalidConfig, c.ReferenceHz)
	}
	if !isPositive(c.TonicHz) {
		return fmt.Errorf("%w: tonic frequency must be positive: %v", ErrInvalidConfig, c.TonicHz)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive: %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.HopLength <= 0 {
		return fmt.Errorf("%w: hop length must be positive: %d", ErrInvalidConfig, c.HopLength)
	}
	return nil
}

// Validate reports the first invalid field.
func (c TrackerConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive: %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window size must be positive: %d", ErrInvalidConfig, c.WindowSize)
	}
	if c.HopLength <= 0 {
		return fmt.Errorf("%w: hop length must be positive: %d", ErrInvalidConfig, c.HopLength)
	}
	if !isPositive(c.MinHz) || !isPositive(c.MaxHz) || c.MinHz >= c.MaxHz {
		return fmt.Errorf("%w: frequency range [%v, %v] is empty", ErrInvalidConfig, c.MinHz, c.MaxHz)
	}
	if c.MaxHz > float64(c.SampleRate)/2 {
		return fmt.Errorf("%w: max frequency %v above Nyquist for %d Hz", ErrInvalidConfig, c.MaxHz, c.SampleRate)
	}
	if c.RelativeThreshold < 0 || c.RelativeThreshold > 1 {
		return fmt.Errorf("%w: relative threshold must be in [0, 1]: %v", ErrInvalidConfig, c.RelativeThreshold)
	}
	return nil
}

// LoadComparisonConfig reads a JSON file over the defaults. Fields missing
// from the file keep their default value.
func LoadComparisonConfig(path string) (ComparisonConfig, error) {
	cfg := DefaultComparisonConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
