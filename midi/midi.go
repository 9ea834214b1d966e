package midi

import (
	"bytes"
	"os"

	"github.com/jsphweid/munotes/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var readSMF = smf.ReadFrom

// ReadMidiFile parses the SMF at path. smf.ReadFrom can panic on broken
// files (https://github.com/gomidi/midi/issues/20), so panics come back as
// errors too.
func ReadMidiFile(path string) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("parsing midi file %s: %v", path, r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	res, err := readSMF(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing midi file %s", path)
	}
	return res, nil
}

// ReducedEvents flattens every track into note on/off events with absolute
// offsets in microseconds. A note on with velocity 0 counts as a note off.
func ReducedEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}
	return reducedEvents
}
