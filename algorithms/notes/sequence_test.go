package notes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	a4 = NoteLabel{"A", 4}
	b4 = NoteLabel{"B", 4}
	a3 = NoteLabel{"A", 3}
)

func TestIngest(t *testing.T) {
	t.Parallel()

	frames := []PitchFrame{
		{FrequencyHz: 440, Confidence: 0.5, FrameIndex: 0},
		{FrequencyHz: 440, Confidence: 0.1, FrameIndex: 1}, // at threshold, dropped
		{FrequencyHz: 0, Confidence: 0.9, FrameIndex: 2},
		{FrequencyHz: -3, Confidence: 0.9, FrameIndex: 3},
		{FrequencyHz: 493.88, Confidence: 0.11, FrameIndex: 4},
		{FrequencyHz: 220, Confidence: 2.0, FrameIndex: 5},
	}

	assert.Equal(t, []NoteLabel{a4, b4, a3}, Ingest(frames, DefaultConfidenceThreshold, DefaultReferenceHz))
	assert.Len(t, RetainFrames(frames, DefaultConfidenceThreshold), 3)
	assert.Empty(t, Ingest(nil, DefaultConfidenceThreshold, DefaultReferenceHz))
}

func TestIngestDropsNonFiniteFrames(t *testing.T) {
	t.Parallel()

	frames := []PitchFrame{
		{FrequencyHz: 440, Confidence: 0.5, FrameIndex: 0},
		{FrequencyHz: math.Inf(1), Confidence: 0.5, FrameIndex: 1},
		{FrequencyHz: math.NaN(), Confidence: 0.5, FrameIndex: 2},
		{FrequencyHz: 440, Confidence: math.NaN(), FrameIndex: 3},
		{FrequencyHz: 493.88, Confidence: math.Inf(1), FrameIndex: 4},
	}

	retained := RetainFrames(frames, DefaultConfidenceThreshold)
	assert.Equal(t, []PitchFrame{frames[0], frames[4]}, retained)
	assert.Equal(t, []NoteLabel{a4, b4}, Ingest(frames, DefaultConfidenceThreshold, DefaultReferenceHz))
}

func TestIngestCustomThreshold(t *testing.T) {
	t.Parallel()

	frames := []PitchFrame{
		{FrequencyHz: 440, Confidence: 0.4},
		{FrequencyHz: 493.88, Confidence: 0.6},
	}
	assert.Equal(t, []NoteLabel{b4}, Ingest(frames, 0.5, DefaultReferenceHz))
}

func TestPitchFrameTimeSeconds(t *testing.T) {
	t.Parallel()

	f := PitchFrame{FrameIndex: 43}
	assert.InDelta(t, 43*512/22050.0, f.TimeSeconds(512, 22050), 1e-12)
	assert.Zero(t, f.TimeSeconds(512, 0))
}

func TestCompress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []NoteLabel
		want Sequence
	}{
		{"runs collapse", []NoteLabel{a4, a4, b4, b4, b4, a4}, Sequence{a4, b4, a4}},
		{"empty", nil, Sequence{}},
		{"single", []NoteLabel{b4}, Sequence{b4}},
		{"octave differs", []NoteLabel{a4, a3, a3, a4}, Sequence{a4, a3, a4}},
		{"already compact", []NoteLabel{a4, b4, a4}, Sequence{a4, b4, a4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(tt.in)
			assert.Equal(t, tt.want, got)
			for i := 1; i < len(got); i++ {
				assert.NotEqual(t, got[i-1], got[i])
			}
		})
	}
}

func TestSequenceStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"A4", "B4"}, Sequence{a4, b4}.Strings())
}
