package note

import (
	"math"
	"testing"

	"github.com/jsphweid/munotes/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestA4(t *testing.T) {
	n, err := New("A", 4)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("A", n.Name())
	assert.Equal(9, n.Index())
	octave, ok := n.Octave()
	assert.True(ok)
	assert.Equal(4, octave)
	num, ok := n.Midi()
	assert.True(ok)
	assert.Equal(69, num)
	freq, ok := n.Frequency()
	assert.True(ok)
	assert.Equal(440.0, freq)
}

func TestTransposeA4UpAFourth(t *testing.T) {
	a4, err := New("A", 4)
	require.NoError(t, err)
	d5, err := a4.Transpose(5)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("D", d5.Name())
	assert.Equal(2, d5.Index())
	octave, _ := d5.Octave()
	assert.Equal(5, octave)
	num, _ := d5.Midi()
	assert.Equal(74, num)
	assert.InEpsilon(587.3295358348151, d5.FrequencyHz(), 1e-9)
	assert.Equal("A4", a4.String(), "receiver must not change")
}

func TestFromMidiDisplay(t *testing.T) {
	n, err := FromMidi(40)
	require.NoError(t, err)
	assert.Equal(t, "E2", n.String())
}

func TestFromMidiRejectsOutOfRange(t *testing.T) {
	for _, num := range []int{-1, 128, 1000} {
		_, err := FromMidi(num)
		assert.True(t, errors.Is(err, ErrInvalidMidiNumber), "midi %d: %v", num, err)
	}
}

func TestNewRejectsOctaveOutsideMidi(t *testing.T) {
	_, err := New("G#", 9)
	assert.True(t, errors.Is(err, ErrInvalidMidiNumber))
	_, err = New("B", -2)
	assert.True(t, errors.Is(err, ErrInvalidMidiNumber))

	for _, s := range []string{"C9223372036854775807", "G#-9223372036854775808", "C768614336404564651", "A10"} {
		_, err = Parse(s)
		assert.True(t, errors.Is(err, ErrInvalidMidiNumber), "%s: %v", s, err)
	}

	g9, err := New("G", 9)
	require.NoError(t, err)
	num, _ := g9.Midi()
	assert.Equal(t, 127, num)
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A4", "A4"},
		{"a4", "A4"},
		{"Bb3", "A#3"},
		{"C#-1", "C#-1"},
		{"Eb", "D#"},
		{"F♯2", "F#2"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.String())
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "H4", "A#x", "C##4", "A4.5"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.True(t, errors.Is(err, pitch.ErrInvalidNoteName), "got %v", err)
		})
	}
}

func TestTransposeAcrossOctaveBoundary(t *testing.T) {
	c0, err := New("C", 0)
	require.NoError(t, err)
	b, err := c0.Transpose(-1)
	require.NoError(t, err)
	assert.Equal(t, "B-1", b.String())

	b3, err := New("B", 3)
	require.NoError(t, err)
	c4, err := b3.Transpose(1)
	require.NoError(t, err)
	assert.Equal(t, "C4", c4.String())
}

func TestTransposeOutOfRange(t *testing.T) {
	lowest, err := FromMidi(0)
	require.NoError(t, err)
	got, err := lowest.Transpose(-1)
	assert.True(t, errors.Is(err, ErrTranspositionOutOfRange))
	assert.True(t, got.Equal(lowest))

	highest, err := FromMidi(127)
	require.NoError(t, err)
	_, err = highest.Transpose(1)
	assert.True(t, errors.Is(err, ErrTranspositionOutOfRange))
}

func TestTransposeWithoutOctaveByHugeAmounts(t *testing.T) {
	c, err := FromName("C")
	require.NoError(t, err)

	up, err := c.Transpose(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, "G", up.String())

	down, err := c.Transpose(math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, "E", down.String())
}

func TestTransposeWithoutOctave(t *testing.T) {
	n, err := FromName("A")
	require.NoError(t, err)
	up, err := n.Transpose(-10)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("B", up.String())
	_, ok := up.Midi()
	assert.False(ok)
	_, ok = up.Frequency()
	assert.False(ok)
	assert.False(up.HasPitch())
}

func TestEqual(t *testing.T) {
	db4, _ := New("Db", 4)
	cs4, _ := New("C#", 4)
	cs5, _ := New("C#", 5)
	cs, _ := FromName("C#")

	assert := assert.New(t)
	assert.True(db4.Equal(cs4))
	assert.False(cs4.Equal(cs5))
	assert.False(cs4.Equal(cs))
	assert.True(cs.Equal(Note{index: 1}))
}

func TestMidiRoundTrip(t *testing.T) {
	for m := MinMidi; m <= MaxMidi; m++ {
		n, err := FromMidi(m)
		require.NoError(t, err)
		got, ok := n.Midi()
		require.True(t, ok)
		require.Equal(t, m, got)
	}
}

func TestTransposeComposes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.IntRange(MinMidi, MaxMidi).Draw(t, "midi")
		a := rapid.IntRange(MinMidi-m, MaxMidi-m).Draw(t, "a")
		b := rapid.IntRange(MinMidi-m-a, MaxMidi-m-a).Draw(t, "b")
		n, err := FromMidi(m)
		if err != nil {
			t.Fatalf("FromMidi(%d): %v", m, err)
		}
		stepwise, err := n.Transpose(a)
		if err != nil {
			t.Fatalf("transpose %d: %v", a, err)
		}
		stepwise, err = stepwise.Transpose(b)
		if err != nil {
			t.Fatalf("transpose %d: %v", b, err)
		}
		direct, err := n.Transpose(a + b)
		if err != nil {
			t.Fatalf("transpose %d: %v", a+b, err)
		}
		if !stepwise.Equal(direct) {
			t.Fatalf("%v then %d,%d = %v, direct = %v", n, a, b, stepwise, direct)
		}
	})
}

func TestTransposeWithoutOctaveNeverGainsPitch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, pitch.NumClasses-1).Draw(t, "index")
		shift := rapid.IntRange(-1000, 1000).Draw(t, "shift")
		n, err := FromName(pitch.NameOf(idx))
		if err != nil {
			t.Fatalf("FromName: %v", err)
		}
		got, err := n.Transpose(shift)
		if err != nil {
			t.Fatalf("transpose: %v", err)
		}
		if _, ok := got.Midi(); ok {
			t.Fatalf("%v gained a midi number", got)
		}
		if got.Index() != pitch.Normalize(idx+shift) {
			t.Fatalf("index %d, want %d", got.Index(), pitch.Normalize(idx+shift))
		}
	})
}

func TestFrequencies(t *testing.T) {
	assert.Equal(t, 440.0, Frequency(69))
	assert.InEpsilon(t, 587.3295358348151, Frequency(74), 1e-9)
}
