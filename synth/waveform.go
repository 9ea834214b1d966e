// Package synth turns notes into sample buffers. It only needs
// HasPitch and FrequencyHz from the items it renders.
package synth

import (
	"math"

	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/note"
	"github.com/jsphweid/munotes/util"
	"github.com/pkg/errors"
)

type Waveform string

const (
	Sin      Waveform = "sin"
	Square   Waveform = "square"
	Sawtooth Waveform = "sawtooth"
	Triangle Waveform = "triangle"
)

var Waveforms = []Waveform{Sin, Square, Sawtooth, Triangle}

// Params controls how a single note is rendered. Duty applies to Square
// and Width to Sawtooth; zero values mean 0.5 and 1.
type Params struct {
	Waveform   Waveform
	SampleRate int
	Duty       float64
	Width      float64
	Envelope   *Envelope
}

type oscillator func(phase float64) float64

func (p Params) oscillator() (oscillator, error) {
	duty := p.Duty
	if duty == 0 {
		duty = 0.5
	}
	width := p.Width
	if width == 0 {
		width = 1
	}
	switch p.Waveform {
	case Sin, "":
		return math.Sin, nil
	case Square:
		return func(phase float64) float64 { return square(phase, duty) }, nil
	case Sawtooth:
		return func(phase float64) float64 { return sawtooth(phase, width) }, nil
	case Triangle:
		return func(phase float64) float64 { return sawtooth(phase, 0.5) }, nil
	}
	return nil, errors.Errorf("unsupported waveform %q", p.Waveform)
}

// cycle position in [0, 1)
func cycle(phase float64) float64 {
	x := math.Mod(phase, 2*math.Pi) / (2 * math.Pi)
	if x < 0 {
		x++
	}
	return x
}

func square(phase float64, duty float64) float64 {
	if cycle(phase) < duty {
		return 1
	}
	return -1
}

// sawtooth rises from -1 to 1 over the first width of the cycle and falls
// back over the rest.
func sawtooth(phase float64, width float64) float64 {
	x := cycle(phase)
	if x < width {
		return -1 + 2*x/width
	}
	return 1 - 2*(x-width)/(1-width)
}

func numSamples(sec float64, sampleRate int) int {
	return int(float64(sampleRate) * sec)
}

// Render produces sec seconds of item. Items without a pitch render as
// silence of the same length.
func Render(item note.Item, sec float64, p Params) ([]float64, error) {
	if p.SampleRate <= 0 {
		return nil, errors.Errorf("sample rate must be positive, got %d", p.SampleRate)
	}
	if sec < 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return nil, errors.Errorf("duration must be a non-negative number of seconds, got %v", sec)
	}
	osc, err := p.oscillator()
	if err != nil {
		return nil, err
	}
	n := numSamples(sec, p.SampleRate)
	var window []float64
	if p.Envelope != nil {
		window = p.Envelope.Window(n, p.SampleRate)
	}
	y := make([]float64, util.Max(n, len(window)))
	if !item.HasPitch() {
		return y, nil
	}
	step := 2 * math.Pi * item.FrequencyHz() / float64(p.SampleRate)
	for i := range y {
		y[i] = osc(step * float64(i))
		if window != nil {
			y[i] *= window[i]
		}
	}
	return y, nil
}

// RenderMix renders every item for sec seconds and sums them, scaled so
// the loudest sample is at most 1.
func RenderMix(items []note.Item, sec float64, p Params) ([]float64, error) {
	var mix []float64
	for _, it := range items {
		y, err := Render(it, sec, p)
		if err != nil {
			return nil, err
		}
		mix = Mix(mix, y)
	}
	return Normalize(mix), nil
}

func ChordItems(c chord.Chord) []note.Item {
	members := c.Members()
	items := make([]note.Item, len(members))
	for i, m := range members {
		items[i] = m
	}
	return items
}

// Mix adds b into a copy of a, padding the shorter one with silence.
func Mix(a []float64, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	res := make([]float64, n)
	copy(res, a)
	for i, v := range b {
		res[i] += v
	}
	return res
}

func Normalize(y []float64) []float64 {
	var peak float64
	for _, v := range y {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak <= 1 {
		return y
	}
	res := make([]float64, len(y))
	for i, v := range y {
		res[i] = v / peak
	}
	return res
}
