package notes

// DefaultTonicHz is middle C, the tonic (Sa) used when none is configured.
const DefaultTonicHz = 261.63

// swarasthanaNames names the twelve Carnatic swarasthanas by semitone above
// Sa. The leading letter is the scale degree, so grouping by first letter
// collects the variants of each degree.
var swarasthanaNames = [semitones]string{"S", "R1", "R2", "G2", "G3", "M1", "M2", "P", "D1", "D2", "N2", "N3"}

// SwaraForPitchClass names the swarasthana of a pitch class relative to the
// tonic's pitch class.
func SwaraForPitchClass(pitchClass, tonicPitchClass int) string {
	offset := ((pitchClass-tonicPitchClass)%semitones + semitones) % semitones
	return swarasthanaNames[offset]
}

// TonicPitchClass returns the pitch class index of the tonic frequency.
func TonicPitchClass(tonicHz, referenceHz float64) (int, bool) {
	label, ok := HzToNoteWithReference(tonicHz, referenceHz)
	if !ok {
		return 0, false
	}
	index, _ := PitchClassIndex(label.PitchClass)
	return index, true
}

// ToSwaraDistribution renames the pitch classes of d to swarasthanas
// relative to the tonic. Entries whose key is not a pitch class are
// skipped; entries landing on the same swara are summed.
func ToSwaraDistribution(d Distribution, tonicPitchClass int) Distribution {
	swaras := make(Distribution, len(d))
	for _, name := range d.Keys() {
		index, ok := PitchClassIndex(name)
		if !ok {
			continue
		}
		swaras[SwaraForPitchClass(index, tonicPitchClass)] += d[name]
	}
	return swaras
}
