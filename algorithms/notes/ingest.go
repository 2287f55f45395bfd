package notes

import "math"

// DefaultConfidenceThreshold is the confidence a frame must exceed to be kept.
const DefaultConfidenceThreshold = 0.1

// PitchFrame is one pitch estimate from the tracker.
type PitchFrame struct {
	FrequencyHz float64 `json:"frequency_hz"`
	Confidence  float64 `json:"confidence"`
	FrameIndex  int     `json:"frame_index"`
}

// TimeSeconds returns the frame's position on the time axis.
func (f PitchFrame) TimeSeconds(hopLength, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(f.FrameIndex) * float64(hopLength) / float64(sampleRate)
}

// RetainFrames keeps frames whose confidence exceeds threshold and whose
// frequency is positive and finite. NaN confidences or frequencies never pass.
// Order is preserved.
func RetainFrames(frames []PitchFrame, threshold float64) []PitchFrame {
	retained := make([]PitchFrame, 0, len(frames))
	for _, f := range frames {
		if !(f.Confidence > threshold) || !(f.FrequencyHz > 0) || math.IsInf(f.FrequencyHz, 1) {
			continue
		}
		retained = append(retained, f)
	}
	return retained
}

// Ingest filters frames and maps the survivors to note labels. Frames the
// mapper rejects are dropped as well.
func Ingest(frames []PitchFrame, threshold, referenceHz float64) []NoteLabel {
	retained := RetainFrames(frames, threshold)
	labels := make([]NoteLabel, 0, len(retained))
	for _, f := range retained {
		if label, ok := HzToNoteWithReference(f.FrequencyHz, referenceHz); ok {
			labels = append(labels, label)
		}
	}
	return labels
}
