package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/munotes/pitch"
	"github.com/jsphweid/munotes/util"
)

func CreateChordKey(keys []uint8) string {
	sorted := make([]uint8, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, key := range sorted {
		res += fmt.Sprintf("%v", key)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

type classSet = [pitch.NumClasses]bool

func classesOf(offsets []int, root int) classSet {
	var set classSet
	for _, o := range offsets {
		set[pitch.Normalize(root+o)] = true
	}
	return set
}

// Identify names every chord in the quality table whose pitch classes are
// exactly those of keys. Chords rooted on the lowest key come first; other
// roots are written over the bass, e.g. "Am7/C". Octave doubling is ignored.
func Identify(keys []uint8) []string {
	if len(keys) == 0 {
		return nil
	}
	lowest := keys[0]
	classes := make([]int, 0, len(keys))
	for _, k := range keys {
		lowest = util.Min(lowest, k)
		classes = append(classes, int(k)%pitch.NumClasses)
	}
	bass := int(lowest) % pitch.NumClasses
	want := classesOf(classes, 0)

	roots := []int{bass}
	for _, c := range util.GetKeys(toSet(classes)) {
		if c != bass {
			roots = append(roots, c)
		}
	}

	var res []string
	for _, root := range roots {
		for _, q := range qualities {
			if q.alias || classesOf(q.intervals, root) != want {
				continue
			}
			name := pitch.NameOf(root) + q.Name
			if root != bass {
				name += "/" + pitch.NameOf(bass)
			}
			res = append(res, name)
		}
	}
	return util.Dedupe(res)
}

func toSet(vals []int) map[int]bool {
	m := make(map[int]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}
