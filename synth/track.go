package synth

import (
	"math"

	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/note"
	"github.com/jsphweid/munotes/util"
	"github.com/pkg/errors"
)

type Unit string

const (
	Seconds       Unit = "s"
	Milliseconds  Unit = "ms"
	QuarterLength Unit = "ql"
)

// Step sounds its items together for Duration, measured in the track's unit.
type Step struct {
	Items    []note.Item
	Duration float64
}

func NoteStep(item note.Item, duration float64) Step {
	return Step{Items: []note.Item{item}, Duration: duration}
}

func ChordStep(c chord.Chord, duration float64) Step {
	return Step{Items: ChordItems(c), Duration: duration}
}

// Track is a line of steps played back to back. Voice, when set, replaces
// the params passed to Stream.Render for this track.
type Track struct {
	Steps []Step
	Unit  Unit
	BPM   float64
	Voice *Params
}

func NewTrack(steps []Step, unit Unit, bpm float64) (*Track, error) {
	switch unit {
	case Seconds, Milliseconds:
	case QuarterLength:
		if bpm <= 0 {
			return nil, errors.New("bpm must be positive when unit is ql")
		}
	default:
		return nil, errors.Errorf("unsupported unit %q", unit)
	}
	for i, st := range steps {
		if st.Duration < 0 || math.IsNaN(st.Duration) || math.IsInf(st.Duration, 0) {
			return nil, errors.Errorf("step %d: duration must be a non-negative number, got %v", i, st.Duration)
		}
	}
	return &Track{Steps: steps, Unit: unit, BPM: bpm}, nil
}

func (t *Track) seconds(duration float64) float64 {
	switch t.Unit {
	case Milliseconds:
		return duration / 1000
	case QuarterLength:
		return duration * 60 / t.BPM
	}
	return duration
}

// Duration is the total length in seconds.
func (t *Track) Duration() float64 {
	var total float64
	for _, s := range t.Steps {
		total += t.seconds(s.Duration)
	}
	return total
}

// Transpose shifts every note in the track. Either every step moves or
// none does.
func (t *Track) Transpose(semitones int) error {
	next := make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		ns := note.NewNotes(s.Items...)
		if err := ns.Transpose(semitones); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		next[i] = Step{Items: ns.Items(), Duration: s.Duration}
	}
	t.Steps = next
	return nil
}

// Render concatenates the steps. The last release samples of each step
// fade out linearly so consecutive notes do not click.
func (t *Track) Render(p Params, release int) ([]float64, error) {
	var y []float64
	for i, s := range t.Steps {
		sec := t.seconds(s.Duration)
		var part []float64
		var err error
		if len(s.Items) == 0 {
			part, err = Render(note.Rest{}, sec, p)
		} else {
			part, err = RenderMix(s.Items, sec, p)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		fade := util.Min(len(part), release)
		for j := 0; j < fade; j++ {
			gain := 1 - float64(j+1)/float64(fade)
			part[len(part)-fade+j] *= gain
		}
		y = append(y, part...)
	}
	return y, nil
}

// Stream plays several tracks at once.
type Stream struct {
	Tracks []*Track
}

func (s *Stream) Transpose(semitones int) error {
	backup := make([][]Step, len(s.Tracks))
	for i, t := range s.Tracks {
		backup[i] = t.Steps
		if err := t.Transpose(semitones); err != nil {
			for j := 0; j < i; j++ {
				s.Tracks[j].Steps = backup[j]
			}
			return errors.Wrapf(err, "track %d", i)
		}
	}
	return nil
}

// Render mixes the tracks, padding shorter ones with silence, and
// normalizes the result. Tracks without a Voice use p.
func (s *Stream) Render(p Params, release int) ([]float64, error) {
	var mix []float64
	for i, t := range s.Tracks {
		tp := p
		if t.Voice != nil {
			tp = *t.Voice
		}
		y, err := t.Render(tp, release)
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i)
		}
		mix = Mix(mix, y)
	}
	return Normalize(mix), nil
}
