// Package pitch maps note-name spellings to semitone indices within an
// octave (C=0 ... B=11) and back.
//
// The mapping is not symmetric: "Db" and "C#" both read as index 1, but
// index 1 is always printed as "C#". Callers that need the original
// spelling must keep it themselves.
package pitch

import (
	"strings"

	"github.com/jsphweid/munotes/util"
	"github.com/pkg/errors"
)

const NumClasses = 12

var ErrInvalidNoteName = errors.New("invalid note name")

var keyNames = [NumClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var accidentals = []struct {
	marker string
	shift  int
}{
	{"#", 1},
	{"♯", 1},
	{"b", -1},
	{"♭", -1},
}

func Normalize(index int) int {
	return util.Mod(index, NumClasses)
}

// NameOf returns the canonical (sharp) spelling of index, wrapped into [0, 11].
func NameOf(index int) string {
	return keyNames[Normalize(index)]
}

func IndexOf(name string) (int, error) {
	idx, rest, err := Split(name)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, errors.Wrapf(ErrInvalidNoteName, "%q has trailing %q", name, rest)
	}
	return idx, nil
}

// Split reads the pitch at the start of s and returns its index together
// with whatever follows it, e.g. "A#m7" -> (10, "m7").
func Split(s string) (int, string, error) {
	if s == "" {
		return 0, "", errors.Wrap(ErrInvalidNoteName, "empty name")
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	offset, ok := letterOffsets[letter]
	if !ok {
		return 0, "", errors.Wrapf(ErrInvalidNoteName, "%q does not start with a letter A-G", s)
	}
	rest := s[1:]
	for _, acc := range accidentals {
		if strings.HasPrefix(rest, acc.marker) {
			offset += acc.shift
			rest = rest[len(acc.marker):]
			break
		}
	}
	return Normalize(offset), rest, nil
}

// Names returns the canonical spellings in index order.
func Names() []string {
	res := make([]string, NumClasses)
	copy(res, keyNames[:])
	return res
}
