// Package chord builds chords from names like "A#m7" and names chords
// from sets of MIDI keys.
package chord

import (
	"strings"

	"github.com/jsphweid/munotes/note"
	"github.com/jsphweid/munotes/pitch"
	"github.com/pkg/errors"
)

// Chord is a root note plus a quality. Members are derived from the two
// and recomputed on every transposition.
type Chord struct {
	name    string
	root    note.Note
	quality Quality
	members []note.Note
}

// Parse builds a chord whose root has no octave.
func Parse(name string) (Chord, error) {
	idx, spelled, q, err := split(name)
	if err != nil {
		return Chord{}, err
	}
	root, err := note.FromName(pitch.NameOf(idx))
	if err != nil {
		return Chord{}, err
	}
	return compose(spelled, root, q)
}

// New builds a chord rooted in the given octave, e.g. New("Am", 3).
func New(name string, octave int) (Chord, error) {
	idx, spelled, q, err := split(name)
	if err != nil {
		return Chord{}, err
	}
	root, err := note.New(pitch.NameOf(idx), octave)
	if err != nil {
		return Chord{}, err
	}
	return compose(spelled, root, q)
}

func split(name string) (int, string, Quality, error) {
	idx, suffix, err := pitch.Split(name)
	if err != nil {
		return 0, "", Quality{}, err
	}
	q, err := LookupQuality(suffix)
	if err != nil {
		return 0, "", Quality{}, errors.Wrapf(err, "chord %q", name)
	}
	prefix := name[:len(name)-len(suffix)]
	prefix = strings.ToUpper(prefix[:1]) + prefix[1:]
	prefix = strings.NewReplacer("♯", "#", "♭", "b").Replace(prefix)
	return idx, prefix + q.Name, q, nil
}

func compose(name string, root note.Note, q Quality) (Chord, error) {
	members := make([]note.Note, len(q.intervals))
	for i, offset := range q.intervals {
		m, err := root.Transpose(offset)
		if err != nil {
			return Chord{}, errors.Wrapf(err, "chord %s", name)
		}
		members[i] = m
	}
	return Chord{name: name, root: root, quality: q, members: members}, nil
}

// Transpose moves the root and renames the chord with the root's sharp
// spelling, so "Bbm7" up 3 is "C#m7".
func (c Chord) Transpose(semitones int) (Chord, error) {
	root, err := c.root.Transpose(semitones)
	if err != nil {
		return c, err
	}
	return compose(root.Name()+c.quality.Name, root, c.quality)
}

func (c Chord) Name() string {
	return c.name
}

func (c Chord) Root() note.Note {
	return c.root
}

// Type is the quality suffix, "" for a major triad.
func (c Chord) Type() string {
	return c.quality.Name
}

func (c Chord) Quality() Quality {
	return c.quality
}

func (c Chord) Intervals() []int {
	return c.quality.Intervals()
}

func (c Chord) Members() []note.Note {
	res := make([]note.Note, len(c.members))
	copy(res, c.members)
	return res
}

func (c Chord) NoteNames() []string {
	res := make([]string, len(c.members))
	for i, m := range c.members {
		res[i] = m.Name()
	}
	return res
}

func (c Chord) Indices() []int {
	res := make([]int, len(c.members))
	for i, m := range c.members {
		res[i] = m.Index()
	}
	return res
}

// Keys lists the MIDI numbers of the members; ok is false when the root
// has no octave.
func (c Chord) Keys() ([]uint8, bool) {
	var res []uint8
	for _, m := range c.members {
		num, ok := m.Midi()
		if !ok {
			return nil, false
		}
		res = append(res, uint8(num))
	}
	return res, true
}

func (c Chord) String() string {
	return c.name
}
