package similarity

import (
	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/algorithms/stats"
)

// BaseSwaras are the seven scale degrees, in scale order.
var BaseSwaras = []byte{'S', 'R', 'G', 'M', 'P', 'D', 'N'}

const (
	// mismatchScore is the contribution of a degree whose dominant variant
	// differs between the two sides, or that only one side sings.
	mismatchScore = 0.1
	// dominanceThreshold is the share both dominant variants must exceed
	// before a differing variant counts as a mismatch.
	dominanceThreshold = 0.05
	// decayRate scales the probability gap in exp(-rate * gap).
	decayRate = 10.0
)

// SwaraMismatch records a scale degree scored with the mismatch penalty.
// An empty label means that side has no variant of the degree.
type SwaraMismatch struct {
	Base      string `json:"base"`
	Reference string `json:"reference"`
	Attempt   string `json:"attempt"`
}

// SwaraResult holds the swara similarity score and how it was reached.
type SwaraResult struct {
	Score       float64         `json:"score"`
	Comparisons int             `json:"comparisons"`
	Mismatches  []SwaraMismatch `json:"mismatches,omitempty"`
}

type candidate struct {
	label       string
	probability float64
}

// SwaraSimilarity compares two distributions degree by degree.
//
// Entries are grouped by the first character of their name against
// BaseSwaras, so the distributions must be keyed by swara names (see
// notes.ToSwaraDistribution); entries with any other leading character
// are ignored. For each degree present on both sides the dominant variant
// of each side is chosen (ties go to the lexicographically first name).
// Differing dominant variants that both exceed 5% score 0.1, otherwise the
// degree scores exp(-10 * |p1 - p2|). A degree present on one side only
// scores 0.1 and a degree absent on both sides is skipped. The result is
// the mean over scored degrees, or 0 when none was scored.
func SwaraSimilarity(reference, attempt notes.Distribution) SwaraResult {
	groups1 := groupByBase(reference)
	groups2 := groupByBase(attempt)

	var result SwaraResult
	total := 0.0

	for _, base := range BaseSwaras {
		c1, ok1 := groups1[base]
		c2, ok2 := groups2[base]

		switch {
		case ok1 && ok2:
			if c1.label != c2.label && c1.probability > dominanceThreshold && c2.probability > dominanceThreshold {
				total += mismatchScore
				result.Mismatches = append(result.Mismatches, SwaraMismatch{
					Base:      string(base),
					Reference: c1.label,
					Attempt:   c2.label,
				})
			} else {
				total += stats.ExponentialDecaySimilarity(c1.probability, c2.probability, decayRate)
			}
			result.Comparisons++

		case ok1 || ok2:
			total += mismatchScore
			result.Mismatches = append(result.Mismatches, SwaraMismatch{
				Base:      string(base),
				Reference: c1.label,
				Attempt:   c2.label,
			})
			result.Comparisons++
		}
	}

	if result.Comparisons > 0 {
		result.Score = total / float64(result.Comparisons)
	}
	return result
}

// SwaraScore returns only the score of SwaraSimilarity.
func SwaraScore(reference, attempt notes.Distribution) float64 {
	return SwaraSimilarity(reference, attempt).Score
}

// groupByBase returns, per base degree, the dominant entry of d.
func groupByBase(d notes.Distribution) map[byte]candidate {
	dominant := make(map[byte]candidate)
	for _, name := range d.Keys() {
		if name == "" || !isBaseSwara(name[0]) {
			continue
		}
		p := d[name]
		current, ok := dominant[name[0]]
		if !ok || p > current.probability {
			dominant[name[0]] = candidate{label: name, probability: p}
		}
	}
	return dominant
}

func isBaseSwara(c byte) bool {
	for _, base := range BaseSwaras {
		if c == base {
			return true
		}
	}
	return false
}
