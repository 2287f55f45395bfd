package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaraForPitchClass(t *testing.T) {
	t.Parallel()

	// Sa on C
	assert.Equal(t, "S", SwaraForPitchClass(0, 0))
	assert.Equal(t, "P", SwaraForPitchClass(7, 0))
	assert.Equal(t, "N3", SwaraForPitchClass(11, 0))

	// Sa on D: C is the flat seventh
	assert.Equal(t, "S", SwaraForPitchClass(2, 2))
	assert.Equal(t, "N2", SwaraForPitchClass(0, 2))
}

func TestTonicPitchClass(t *testing.T) {
	t.Parallel()

	pc, ok := TonicPitchClass(DefaultTonicHz, DefaultReferenceHz)
	require.True(t, ok)
	assert.Equal(t, 0, pc)

	pc, ok = TonicPitchClass(293.66, DefaultReferenceHz)
	require.True(t, ok)
	assert.Equal(t, 2, pc)

	_, ok = TonicPitchClass(0, DefaultReferenceHz)
	assert.False(t, ok)
}

func TestToSwaraDistribution(t *testing.T) {
	t.Parallel()

	dist := Distribution{"C": 0.25, "E": 0.25, "G": 0.5, "Sa": 1}
	assert.Equal(t, Distribution{"S": 0.25, "G3": 0.25, "P": 0.5}, ToSwaraDistribution(dist, 0))
	assert.Empty(t, ToSwaraDistribution(Distribution{}, 0))
}
