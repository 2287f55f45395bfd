package notes

import (
	"fmt"
	"math"
)

const (
	// DefaultReferenceHz is the A4 tuning reference.
	DefaultReferenceHz = 440.0

	referenceMIDI = 69
	semitones     = 12
)

// pitchClassNames is the chromatic alphabet indexed by pitch class (0=C)
var pitchClassNames = [semitones]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteLabel is a quantized note: pitch class plus octave (scientific pitch
// notation, so MIDI 60 is C4). Compare with ==.
type NoteLabel struct {
	PitchClass string `json:"pitch_class"`
	Octave     int    `json:"octave"`
}

// String renders the label as e.g. "A4" or "C#-1".
func (n NoteLabel) String() string {
	return fmt.Sprintf("%s%d", n.PitchClass, n.Octave)
}

// MarshalText lets sequences serialize as plain note names.
func (n NoteLabel) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// PitchClassNames returns a copy of the chromatic alphabet.
func PitchClassNames() []string {
	names := make([]string, semitones)
	copy(names, pitchClassNames[:])
	return names
}

// PitchClassIndex returns the chromatic index of a pitch class name.
func PitchClassIndex(name string) (int, bool) {
	for i, n := range pitchClassNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// MIDINumber returns the continuous MIDI pitch for a frequency, with
// referenceHz sounding as MIDI 69.
func MIDINumber(frequencyHz, referenceHz float64) float64 {
	return referenceMIDI + semitones*math.Log2(frequencyHz/referenceHz)
}

// QuantizeMIDI rounds a continuous MIDI pitch to the nearest semitone.
// Exact half-semitones round away from zero (69.5 -> 70, -0.5 -> -1).
func QuantizeMIDI(midi float64) int {
	return int(math.Round(midi))
}

// FromMIDI builds the label of an integer MIDI number.
func FromMIDI(midi int) NoteLabel {
	index := ((midi % semitones) + semitones) % semitones
	return NoteLabel{
		PitchClass: pitchClassNames[index],
		Octave:     floorDiv(midi, semitones) - 1,
	}
}

// HzToNote maps a frequency to its nearest note against A4 = 440 Hz.
// The second result is false for silence or untracked frames (<= 0 Hz)
// and for non-finite input.
func HzToNote(frequencyHz float64) (NoteLabel, bool) {
	return HzToNoteWithReference(frequencyHz, DefaultReferenceHz)
}

// HzToNoteWithReference is HzToNote with an explicit A4 reference.
func HzToNoteWithReference(frequencyHz, referenceHz float64) (NoteLabel, bool) {
	if !(frequencyHz > 0) || math.IsInf(frequencyHz, 1) {
		return NoteLabel{}, false
	}
	if !(referenceHz > 0) || math.IsInf(referenceHz, 1) {
		return NoteLabel{}, false
	}

	return FromMIDI(QuantizeMIDI(MIDINumber(frequencyHz, referenceHz))), true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
