package notes

// Sequence is a note sequence with no two adjacent labels equal.
// Treat it as read-only once built.
type Sequence []NoteLabel

// Compress collapses runs of identical labels into a single note event.
func Compress(labels []NoteLabel) Sequence {
	seq := make(Sequence, 0, len(labels))
	for i, label := range labels {
		if i > 0 && label == labels[i-1] {
			continue
		}
		seq = append(seq, label)
	}
	return seq
}

// Strings returns the labels as note names.
func (s Sequence) Strings() []string {
	names := make([]string, len(s))
	for i, label := range s {
		names[i] = label.String()
	}
	return names
}
