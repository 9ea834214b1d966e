package note

import "strings"

const RestGlyph = "r"

// Item is either a Note or a Rest. The set is closed: nothing outside
// this package can implement it.
type Item interface {
	HasPitch() bool
	FrequencyHz() float64
	String() string
	isItem()
}

// Rest is a silent slot in a sequence.
type Rest struct{}

func (Rest) HasPitch() bool       { return false }
func (Rest) FrequencyHz() float64 { return 0 }
func (Rest) String() string       { return RestGlyph }
func (Rest) isItem()              {}

func IsRest(it Item) bool {
	_, ok := it.(Rest)
	return ok
}

// ParseItem reads a single token: "r" (any case) is a Rest, anything else
// goes through Parse.
func ParseItem(s string) (Item, error) {
	if strings.EqualFold(s, RestGlyph) {
		return Rest{}, nil
	}
	n, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ItemsEqual compares two items by value.
func ItemsEqual(a Item, b Item) bool {
	switch av := a.(type) {
	case Note:
		bv, ok := b.(Note)
		return ok && av.Equal(bv)
	case Rest:
		return IsRest(b)
	}
	return false
}
