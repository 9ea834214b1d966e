package chord

import "github.com/pkg/errors"

var ErrUnknownChordQuality = errors.New("unknown chord quality")

// Quality is a chord type suffix ("m7", "dim", "" for a major triad) and
// its semitone offsets from the root. The first offset is always 0.
type Quality struct {
	Name      string
	intervals []int
	// alias qualities parse but are never chosen when naming a key set
	alias bool
}

func (q Quality) Intervals() []int {
	res := make([]int, len(q.intervals))
	copy(res, q.intervals)
	return res
}

var qualities = []Quality{
	{Name: "", intervals: []int{0, 4, 7}},
	{Name: "m", intervals: []int{0, 3, 7}},
	{Name: "7", intervals: []int{0, 4, 7, 10}},
	{Name: "m7", intervals: []int{0, 3, 7, 10}},
	{Name: "M7", intervals: []int{0, 4, 7, 11}},
	{Name: "maj7", intervals: []int{0, 4, 7, 11}, alias: true},
	{Name: "mM7", intervals: []int{0, 3, 7, 11}},
	{Name: "6", intervals: []int{0, 4, 7, 9}},
	{Name: "m6", intervals: []int{0, 3, 7, 9}},
	{Name: "sus2", intervals: []int{0, 2, 7}},
	{Name: "sus4", intervals: []int{0, 5, 7}},
	{Name: "7sus4", intervals: []int{0, 5, 7, 10}},
	{Name: "dim", intervals: []int{0, 3, 6}},
	{Name: "dim7", intervals: []int{0, 3, 6, 9}},
	{Name: "m7b5", intervals: []int{0, 3, 6, 10}},
	{Name: "aug", intervals: []int{0, 4, 8}},
	{Name: "add9", intervals: []int{0, 4, 7, 14}},
	{Name: "9", intervals: []int{0, 4, 7, 10, 14}},
	{Name: "m9", intervals: []int{0, 3, 7, 10, 14}},
}

var qualityByName = func() map[string]Quality {
	m := make(map[string]Quality, len(qualities))
	for _, q := range qualities {
		m[q.Name] = q
	}
	return m
}()

func LookupQuality(name string) (Quality, error) {
	q, ok := qualityByName[name]
	if !ok {
		return Quality{}, errors.Wrapf(ErrUnknownChordQuality, "%q", name)
	}
	return q, nil
}

// Qualities lists every supported quality in table order, aliases included.
func Qualities() []Quality {
	res := make([]Quality, len(qualities))
	copy(res, qualities)
	return res
}
