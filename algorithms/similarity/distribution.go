// Package similarity scores a learner's rendition against a reference using
// note sequences and note distributions.
package similarity

import (
	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/algorithms/stats"
	"gonum.org/v1/gonum/stat"
)

// DistributionSimilarity compares two distributions note by note over the
// union of their names. Each note scores 1 - |p1 - p2| (absent names count
// as 0) and the aggregate is the mean of the per-note scores. Two empty
// distributions are perfectly similar.
func DistributionSimilarity(d1, d2 notes.Distribution) (float64, map[string]float64) {
	union := notes.UnionKeys(d1, d2)
	perNote := make(map[string]float64, len(union))
	if len(union) == 0 {
		return 1.0, perNote
	}

	scores := make([]float64, len(union))
	for i, name := range union {
		scores[i] = stats.AbsoluteDifferenceSimilarity(d1.Get(name), d2.Get(name))
		perNote[name] = scores[i]
	}

	return stat.Mean(scores, nil), perNote
}
