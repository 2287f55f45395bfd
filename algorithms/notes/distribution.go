package notes

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Distribution maps a name (an octave-free pitch class, or a swara after
// transliteration) to its share of note events. Values sum to 1 when the
// distribution is non-empty. Treat it as read-only once built.
type Distribution map[string]float64

// NewDistribution counts the pitch classes of seq and normalizes by the
// number of events. An empty sequence gives an empty distribution.
func NewDistribution(seq Sequence) Distribution {
	dist := make(Distribution)
	for _, label := range seq {
		dist[label.PitchClass]++
	}
	if total := dist.Total(); total > 0 {
		for name := range dist {
			dist[name] /= total
		}
	}
	return dist
}

// Get returns the probability of name, 0 when absent.
func (d Distribution) Get(name string) float64 {
	return d[name]
}

// Keys returns the names in sorted order.
func (d Distribution) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Total sums the values in sorted key order, so the result does not
// depend on map iteration order.
func (d Distribution) Total() float64 {
	values := make([]float64, 0, len(d))
	for _, k := range d.Keys() {
		values = append(values, d[k])
	}
	return floats.Sum(values)
}

// UnionKeys returns the sorted union of the names in a and b.
func UnionKeys(a, b Distribution) []string {
	union := maps.Clone(a)
	if union == nil {
		union = make(Distribution)
	}
	maps.Copy(union, b)
	return union.Keys()
}
