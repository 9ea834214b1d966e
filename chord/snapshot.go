package chord

import (
	"sort"

	"github.com/jsphweid/munotes/model"
	"github.com/jsphweid/munotes/util"
)

func getSnapshot(offset int64, pressed map[uint8]bool) model.Snapshot {
	return model.Snapshot{Offset: offset, Keys: util.GetKeys(pressed)}
}

// Snapshots replays note events and records which keys are held after
// every change, one snapshot per distinct offset. Empty snapshots are
// dropped.
func Snapshots(events []model.ReducedEvent) []model.Snapshot {
	sorted := make([]model.ReducedEvent, len(events))
	copy(sorted, events)

	// prioritize smaller offset values then note off
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].IsNoteOff && !sorted[j].IsNoteOff
	})

	offsetToSnapshot := make(map[int64]model.Snapshot)
	pressed := make(map[uint8]bool)
	for _, evt := range sorted {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		offsetToSnapshot[evt.Offset] = getSnapshot(evt.Offset, pressed)
	}

	var res []model.Snapshot
	for _, offset := range util.GetKeys(offsetToSnapshot) {
		s := offsetToSnapshot[offset]
		if len(s.Keys) > 0 {
			res = append(res, s)
		}
	}
	return res
}

// IdentifySnapshots names each snapshot, skipping ones that repeat the key
// set of the previous snapshot.
func IdentifySnapshots(snapshots []model.Snapshot) []model.IdentifiedSnapshot {
	var res []model.IdentifiedSnapshot
	var prevKey string
	for _, s := range snapshots {
		key := CreateChordKey(s.Keys)
		if key == prevKey {
			continue
		}
		prevKey = key
		res = append(res, model.IdentifiedSnapshot{Snapshot: s, Chords: Identify(s.Keys)})
	}
	return res
}
