package similarity

import (
	"slices"

	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/algorithms/stats"
)

// PatternSimilarity is the cosine similarity of the note-count vectors of
// two sequences. Counts are not normalized, so the relative length of the
// sequences matters. Two empty sequences score 1.0; one empty sequence
// scores 0.0.
func PatternSimilarity(s1, s2 notes.Sequence) float64 {
	counts1 := countLabels(s1)
	counts2 := countLabels(s2)

	vocabulary := make([]string, 0, len(counts1)+len(counts2))
	for name := range counts1 {
		vocabulary = append(vocabulary, name)
	}
	for name := range counts2 {
		if _, ok := counts1[name]; !ok {
			vocabulary = append(vocabulary, name)
		}
	}
	slices.Sort(vocabulary)

	v1 := make([]float64, len(vocabulary))
	v2 := make([]float64, len(vocabulary))
	for i, name := range vocabulary {
		v1[i] = float64(counts1[name])
		v2[i] = float64(counts2[name])
	}

	return stats.CosineSimilarity(v1, v2)
}

func countLabels(seq notes.Sequence) map[string]int {
	counts := make(map[string]int)
	for _, label := range seq {
		counts[label.String()]++
	}
	return counts
}
