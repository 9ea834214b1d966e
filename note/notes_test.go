package note

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseNotes(t *testing.T, tokens ...string) *Notes {
	t.Helper()
	ns, err := ParseNotes(tokens)
	require.NoError(t, err)
	return ns
}

func TestAppendKeepsOrderAndDuplicates(t *testing.T) {
	ns := mustParseNotes(t, "C4", "r", "C4", "G")
	ns.Append(Rest{})

	assert := assert.New(t)
	assert.Equal(5, ns.Len())
	assert.Equal([]string{"C4", "r", "C4", "G", "r"}, ns.Strings())
	assert.Equal("[C4 r C4 G r]", ns.String())
}

func TestAppendIgnoresNil(t *testing.T) {
	ns := NewNotes(Rest{}, nil)
	ns.Append(nil)

	assert := assert.New(t)
	assert.Equal(1, ns.Len())
	assert.Equal("[r]", ns.String())
}

func TestAtBoundsChecked(t *testing.T) {
	ns := mustParseNotes(t, "C4", "r")

	it, err := ns.At(1)
	require.NoError(t, err)
	assert.True(t, IsRest(it))

	_, err = ns.At(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = ns.At(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestTransposeSkipsRests(t *testing.T) {
	ns := mustParseNotes(t, "A4", "r", "C#", "B3")
	require.NoError(t, ns.Transpose(3))
	assert.Equal(t, []string{"C5", "r", "E", "D4"}, ns.Strings())
}

func TestTransposeIsAllOrNothing(t *testing.T) {
	ns := mustParseNotes(t, "C4", "r", "G9")
	before := ns.Items()

	err := ns.Transpose(1)
	assert.True(t, errors.Is(err, ErrTranspositionOutOfRange))

	after := ns.Items()
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.True(t, ItemsEqual(before[i], after[i]), "item %d changed: %v -> %v", i, before[i], after[i])
	}
}

func TestItemsReturnsACopy(t *testing.T) {
	ns := mustParseNotes(t, "C4")
	items := ns.Items()
	items[0] = Rest{}

	it, err := ns.At(0)
	require.NoError(t, err)
	assert.False(t, IsRest(it))
}

func TestPitchAggregatesSkipRests(t *testing.T) {
	ns := mustParseNotes(t, "A4", "r", "E", "A5")

	assert := assert.New(t)
	assert.Len(ns.Pitched(), 3)
	assert.Equal([]float64{440, 880}, ns.Frequencies())
}

func TestParseNotesReportsBadToken(t *testing.T) {
	_, err := ParseNotes([]string{"C4", "Q"})
	assert.Error(t, err)
}

func TestBoundaryInterface(t *testing.T) {
	a4, _ := New("A", 4)
	a, _ := FromName("A")
	items := []Item{a4, a, Rest{}}

	assert := assert.New(t)
	assert.True(items[0].HasPitch())
	assert.Equal(440.0, items[0].FrequencyHz())
	assert.False(items[1].HasPitch())
	assert.False(items[2].HasPitch())
	assert.Equal(RestGlyph, items[2].String())
}
