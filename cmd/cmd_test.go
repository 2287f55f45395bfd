package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/comparison"
	"github.com/RyanBlaney/sonido-swara/comparison/config"
	"github.com/RyanBlaney/sonido-swara/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(nil)
	m.Run()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeSplit(t, args...)
	return stdout, err
}

func executeSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// flags are package globals; reset them between runs
	logLevel, configPath, plotsDir, noColor = "info", "", "", false
	t.Cleanup(func() { logging.SetGlobalLogger(nil) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

type stubSource map[string][]notes.PitchFrame

func (s stubSource) Frames(_ context.Context, path string) ([]notes.PitchFrame, error) {
	frames, ok := s[path]
	if !ok {
		return nil, errors.New("no such take")
	}
	return frames, nil
}

func useFrameSource(t *testing.T, src comparison.FrameSource) {
	t.Helper()
	previous := newFrameSource
	newFrameSource = func(config.ComparisonConfig) (comparison.FrameSource, error) { return src, nil }
	t.Cleanup(func() { newFrameSource = previous })
}

func melody(hz ...float64) []notes.PitchFrame {
	frames := make([]notes.PitchFrame, len(hz))
	for i, f := range hz {
		frames[i] = notes.PitchFrame{FrequencyHz: f, Confidence: 0.5, FrameIndex: i}
	}
	return frames
}

func TestCompareRequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "compare", "only-one.wav")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "chatty", "notes", "take.wav")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sample_rate": -1}`), 0o644))

	_, err := execute(t, "--config", path, "compare", "a.wav", "b.wav")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestUnreadableAudioIsASourceFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wav")

	_, err := execute(t, "notes", missing)
	assert.ErrorIs(t, err, comparison.ErrSourceFailed)

	_, err = execute(t, "compare", missing, missing)
	assert.ErrorIs(t, err, comparison.ErrSourceFailed)
}

func TestNewAudioSourceFollowsConfig(t *testing.T) {
	cfg := config.DefaultComparisonConfig()
	cfg.SampleRate = 16000
	cfg.HopLength = 256

	src, err := newAudioSource(cfg)
	require.NoError(t, err)
	assert.NotNil(t, src)
}

func TestCompareKeepsLogsOffStdout(t *testing.T) {
	useFrameSource(t, stubSource{
		"ref.wav":     melody(440, 493.88, 523.25),
		"attempt.wav": melody(440, 493.88, 493.88),
	})
	plots := t.TempDir()

	stdout, stderr, err := executeSplit(t, "--log-level", "debug", "--no-color", "compare", "ref.wav", "attempt.wav", "--plots", plots)
	require.NoError(t, err)

	require.True(t, json.Valid([]byte(stdout)), stdout)
	var result struct {
		Reference struct {
			Sequence []string `json:"sequence"`
		} `json:"reference"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, []string{"A4", "B4", "C5"}, result.Reference.Sequence)

	assert.Contains(t, stderr, "[DEBUG] Melody comparison completed")
	assert.Contains(t, stderr, "[INFO] Charts written")
	assert.FileExists(t, filepath.Join(plots, "distribution.png"))
}

func TestNotesKeepsLogsOffStdout(t *testing.T) {
	useFrameSource(t, stubSource{"take.wav": melody(440, 440, 493.88)})

	stdout, _, err := executeSplit(t, "--log-level", "debug", "notes", "take.wav")
	require.NoError(t, err)

	var analysis struct {
		Sequence []string `json:"sequence"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &analysis))
	assert.Equal(t, []string{"A4", "B4"}, analysis.Sequence)
}

func TestSourceFailureIsLoggedToStderr(t *testing.T) {
	useFrameSource(t, stubSource{})

	stdout, stderr, err := executeSplit(t, "compare", "ref.wav", "attempt.wav")
	assert.ErrorIs(t, err, comparison.ErrSourceFailed)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[ERROR] Failed to load reference")
}
