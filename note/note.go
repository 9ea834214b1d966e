// Package note holds single pitches (Note), silence (Rest) and ordered
// collections of both (Notes).
package note

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jsphweid/munotes/pitch"
	"github.com/pkg/errors"
)

const (
	MidiA4 = 69
	FreqA4 = 440.0

	MinMidi = 0
	MaxMidi = 127

	MinOctave = MinMidi/12 - 1
	MaxOctave = MaxMidi/12 - 1
)

var (
	ErrInvalidMidiNumber       = errors.New("invalid midi number")
	ErrTranspositionOutOfRange = errors.New("transposition out of range")
)

// Note is a pitch class with an optional octave. The zero value is C
// without an octave. Only the index and octave are stored; name, MIDI
// number and frequency are always derived from them.
type Note struct {
	index     int
	octave    int
	hasOctave bool
}

// FromName returns an octave-less note, e.g. "Bb".
func FromName(name string) (Note, error) {
	idx, err := pitch.IndexOf(name)
	if err != nil {
		return Note{}, err
	}
	return Note{index: idx}, nil
}

func New(name string, octave int) (Note, error) {
	idx, err := pitch.IndexOf(name)
	if err != nil {
		return Note{}, err
	}
	return withOctave(idx, octave)
}

// Parse reads a name optionally followed by an octave: "A", "A4", "C#-1".
func Parse(s string) (Note, error) {
	idx, rest, err := pitch.Split(s)
	if err != nil {
		return Note{}, err
	}
	if rest == "" {
		return Note{index: idx}, nil
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, errors.Wrapf(pitch.ErrInvalidNoteName, "%q has a bad octave %q", s, rest)
	}
	return withOctave(idx, octave)
}

func FromMidi(num int) (Note, error) {
	if num < MinMidi || num > MaxMidi {
		return Note{}, errors.Wrapf(ErrInvalidMidiNumber, "%d not in [%d, %d]", num, MinMidi, MaxMidi)
	}
	return fromValidMidi(num), nil
}

func fromValidMidi(num int) Note {
	return Note{
		index:     num % pitch.NumClasses,
		octave:    num/pitch.NumClasses - 1,
		hasOctave: true,
	}
}

func withOctave(idx int, octave int) (Note, error) {
	if octave < MinOctave || octave > MaxOctave {
		return Note{}, errors.Wrapf(ErrInvalidMidiNumber, "octave %d not in [%d, %d]", octave, MinOctave, MaxOctave)
	}
	num := midiOf(idx, octave)
	if num < MinMidi || num > MaxMidi {
		return Note{}, errors.Wrapf(ErrInvalidMidiNumber, "%s%d is midi %d", pitch.NameOf(idx), octave, num)
	}
	return Note{index: idx, octave: octave, hasOctave: true}, nil
}

func midiOf(idx int, octave int) int {
	return idx + pitch.NumClasses*(octave+1)
}

func (n Note) Name() string {
	return pitch.NameOf(n.index)
}

func (n Note) Index() int {
	return n.index
}

func (n Note) Octave() (int, bool) {
	return n.octave, n.hasOctave
}

func (n Note) Midi() (int, bool) {
	if !n.hasOctave {
		return 0, false
	}
	return midiOf(n.index, n.octave), true
}

func (n Note) Frequency() (float64, bool) {
	num, ok := n.Midi()
	if !ok {
		return 0, false
	}
	return Frequency(num), true
}

// Frequency converts a MIDI number to Hz in equal temperament, A4 = 440.
func Frequency(num int) float64 {
	return FreqA4 * math.Pow(2, float64(num-MidiA4)/float64(pitch.NumClasses))
}

// Transpose shifts the note by semitones. Without an octave only the
// pitch class moves. The receiver is never modified.
func (n Note) Transpose(semitones int) (Note, error) {
	num, ok := n.Midi()
	if !ok {
		return Note{index: pitch.Normalize(n.index + pitch.Normalize(semitones))}, nil
	}
	shifted := num + semitones
	if shifted < MinMidi || shifted > MaxMidi {
		return n, errors.Wrapf(ErrTranspositionOutOfRange, "%s by %d gives midi %d", n, semitones, shifted)
	}
	return fromValidMidi(shifted), nil
}

func (n Note) Equal(other Note) bool {
	if n.index != other.index || n.hasOctave != other.hasOctave {
		return false
	}
	return !n.hasOctave || n.octave == other.octave
}

// HasPitch reports whether the note sounds at a concrete frequency, which
// needs an octave.
func (n Note) HasPitch() bool {
	return n.hasOctave
}

// FrequencyHz is 0 for notes without an octave; check HasPitch first.
func (n Note) FrequencyHz() float64 {
	f, _ := n.Frequency()
	return f
}

func (n Note) String() string {
	if !n.hasOctave {
		return n.Name()
	}
	return fmt.Sprintf("%s%d", n.Name(), n.octave)
}

func (Note) isItem() {}
