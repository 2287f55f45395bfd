package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDistribution(t *testing.T) {
	t.Parallel()

	dist := NewDistribution(Sequence{a4, b4})
	assert.Equal(t, Distribution{"A": 0.5, "B": 0.5}, dist)

	// octaves fold into one pitch class
	dist = NewDistribution(Sequence{a4, a3, b4, NoteLabel{"C#", 5}})
	assert.InDelta(t, 0.5, dist.Get("A"), 1e-12)
	assert.InDelta(t, 0.25, dist.Get("C#"), 1e-12)
	assert.Zero(t, dist.Get("D"))

	// shares are exact count ratios
	dist = NewDistribution(Sequence{a4, b4, a4})
	assert.Equal(t, Distribution{"A": 2.0 / 3, "B": 1.0 / 3}, dist)
}

func TestDistributionSumsToOne(t *testing.T) {
	t.Parallel()

	seqs := []Sequence{
		{a4},
		{a4, b4, a4},
		{a4, b4, a3, NoteLabel{"C", 4}, NoteLabel{"D", 4}, NoteLabel{"E", 2}, NoteLabel{"F#", 3}},
	}
	for _, seq := range seqs {
		assert.InDelta(t, 1.0, NewDistribution(seq).Total(), 1e-9)
	}
}

func TestEmptyDistribution(t *testing.T) {
	t.Parallel()

	dist := NewDistribution(Sequence{})
	assert.NotNil(t, dist)
	assert.Empty(t, dist)
	assert.Zero(t, dist.Total())
}

func TestUnionKeys(t *testing.T) {
	t.Parallel()

	a := Distribution{"B": 0.5, "A": 0.5}
	b := Distribution{"C": 1}
	assert.Equal(t, []string{"A", "B", "C"}, UnionKeys(a, b))
	assert.Empty(t, UnionKeys(nil, nil))
}
