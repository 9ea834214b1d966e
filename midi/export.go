package midi

import (
	"io"
	"math"
	"os"

	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/note"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Step is a group of keys struck together and held for Beats quarter
// notes. A step without keys is a rest.
type Step struct {
	Keys  []uint8
	Beats float64
}

type ExportOptions struct {
	Ticks    uint16
	BPM      float64
	Channel  uint8
	Velocity uint8
}

// NotesToSteps gives every item one beat. Notes need an octave.
func NotesToSteps(ns *note.Notes) ([]Step, error) {
	items := ns.Items()
	steps := make([]Step, 0, len(items))
	for i, it := range items {
		switch v := it.(type) {
		case note.Note:
			num, ok := v.Midi()
			if !ok {
				return nil, errors.Errorf("item %d (%s) has no octave", i, v)
			}
			steps = append(steps, Step{Keys: []uint8{uint8(num)}, Beats: 1})
		default:
			steps = append(steps, Step{Beats: 1})
		}
	}
	return steps, nil
}

// ChordsToSteps holds every chord for beats. Chord roots need an octave.
func ChordsToSteps(chords []chord.Chord, beats float64) ([]Step, error) {
	if err := checkBeats(beats); err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(chords))
	for _, c := range chords {
		keys, ok := c.Keys()
		if !ok {
			return nil, errors.Errorf("chord %s has no octave", c)
		}
		steps = append(steps, Step{Keys: keys, Beats: beats})
	}
	return steps, nil
}

func checkBeats(beats float64) error {
	if beats < 0 || math.IsNaN(beats) || math.IsInf(beats, 0) {
		return errors.Errorf("beats must be a non-negative number, got %v", beats)
	}
	return nil
}

func (o ExportOptions) validate() error {
	if o.Ticks == 0 {
		return errors.New("ticks must be positive")
	}
	if o.BPM <= 0 {
		return errors.New("bpm must be positive")
	}
	if o.Channel > 15 || o.Velocity > 127 {
		return errors.Errorf("channel %d / velocity %d out of range", o.Channel, o.Velocity)
	}
	return nil
}

func BuildSMF(steps []Step, opts ExportOptions) (*smf.SMF, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	clock := smf.MetricTicks(opts.Ticks)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var delta uint32
	for i, step := range steps {
		if err := checkBeats(step.Beats); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		length := uint32(math.Round(step.Beats * float64(clock.Ticks4th())))
		if len(step.Keys) == 0 {
			delta += length
			continue
		}
		for _, key := range step.Keys {
			tr.Add(delta, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
			delta = 0
		}
		for i, key := range step.Keys {
			if i == 0 {
				tr.Add(length, gomidi.NoteOff(opts.Channel, key))
			} else {
				tr.Add(0, gomidi.NoteOff(opts.Channel, key))
			}
		}
	}
	tr.Close(delta)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return s, nil
}

func Write(w io.Writer, steps []Step, opts ExportOptions) error {
	s, err := BuildSMF(steps, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteMidiFile(path string, steps []Step, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating midi file")
	}
	defer f.Close()

	if err := Write(f, steps, opts); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
