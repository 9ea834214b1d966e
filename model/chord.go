package model

type Keys = []uint8

// ReducedEvent is a note on/off stripped down to what chord snapshots need.
type ReducedEvent struct {
	// microseconds from the start of the file
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// Snapshot is the set of keys sounding from Offset until the next snapshot.
type Snapshot struct {
	Offset int64
	Keys   Keys
}

// IdentifiedSnapshot pairs a snapshot with every chord name that spells it.
type IdentifiedSnapshot struct {
	Snapshot
	Chords []string
}
