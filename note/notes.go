package note

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Notes is an ordered sequence of notes and rests. Order is time order.
// It is not safe for concurrent use.
type Notes struct {
	items []Item
}

func NewNotes(items ...Item) *Notes {
	ns := &Notes{}
	for _, it := range items {
		ns.Append(it)
	}
	return ns
}

// ParseNotes builds a collection from tokens such as "C4", "r", "Eb".
func ParseNotes(tokens []string) (*Notes, error) {
	ns := &Notes{}
	for i, tok := range tokens {
		it, err := ParseItem(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d", i)
		}
		ns.Append(it)
	}
	return ns, nil
}

// Append adds it at the end. A nil item is ignored.
func (ns *Notes) Append(it Item) {
	if it == nil {
		return
	}
	ns.items = append(ns.items, it)
}

func (ns *Notes) Len() int {
	return len(ns.items)
}

func (ns *Notes) At(i int) (Item, error) {
	if i < 0 || i >= len(ns.items) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "%d not in [0, %d)", i, len(ns.items))
	}
	return ns.items[i], nil
}

// Items returns a copy in insertion order.
func (ns *Notes) Items() []Item {
	res := make([]Item, len(ns.items))
	copy(res, ns.items)
	return res
}

// Transpose shifts every note by semitones and leaves rests alone. If any
// note would leave the MIDI range nothing is changed.
func (ns *Notes) Transpose(semitones int) error {
	next := make([]Item, len(ns.items))
	for i, it := range ns.items {
		switch v := it.(type) {
		case Note:
			t, err := v.Transpose(semitones)
			if err != nil {
				return errors.Wrapf(err, "item %d", i)
			}
			next[i] = t
		default:
			next[i] = v
		}
	}
	ns.items = next
	return nil
}

// Pitched returns the notes only, in order.
func (ns *Notes) Pitched() []Note {
	var res []Note
	for _, it := range ns.items {
		if n, ok := it.(Note); ok {
			res = append(res, n)
		}
	}
	return res
}

// Frequencies lists the frequency of every item that has one; rests and
// octave-less notes are skipped.
func (ns *Notes) Frequencies() []float64 {
	var res []float64
	for _, n := range ns.Pitched() {
		if f, ok := n.Frequency(); ok {
			res = append(res, f)
		}
	}
	return res
}

func (ns *Notes) Strings() []string {
	res := make([]string, len(ns.items))
	for i, it := range ns.items {
		res[i] = it.String()
	}
	return res
}

func (ns *Notes) String() string {
	return "[" + strings.Join(ns.Strings(), " ") + "]"
}
