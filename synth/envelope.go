package synth

import (
	"math"

	"github.com/jsphweid/munotes/util"
)

// Envelope is an attack/hold/decay/sustain/release amplitude shape. Times
// are in seconds, Sustain is a level in [0, 1]. The orders raise the
// attack, decay and release ramps to a power; 0 means linear.
type Envelope struct {
	Attack  float64
	Hold    float64
	Decay   float64
	Sustain float64
	Release float64

	AttackOrder  float64
	DecayOrder   float64
	ReleaseOrder float64
}

func DefaultEnvelope() *Envelope {
	return &Envelope{Attack: 0.01, Decay: 0.1, Sustain: 0.5, Release: 0.1}
}

func order(o float64) float64 {
	if o <= 0 {
		return 1
	}
	return o
}

// ramp is a curved line from 1 down to 0 (or 0 up to 1 when rising) over n
// points, endpoints included.
func ramp(n int, rising bool, order float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		var x float64
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		if !rising {
			x = 1 - x
		}
		res[i] = math.Pow(x, order)
	}
	return res
}

func clampSamples(n int, limit int) int {
	if n > limit {
		return limit
	}
	if n < 0 {
		return 0
	}
	return n
}

// Window returns the gain for a note body of n samples followed by the
// release tail, so it is longer than n by Release seconds.
func (e *Envelope) Window(n int, sampleRate int) []float64 {
	sr := float64(sampleRate)
	n = util.Max(n, 0)

	at := clampSamples(int(sr*e.Attack), n)
	ht := clampSamples(int(sr*e.Hold), n-at)
	dt := clampSamples(int(sr*e.Decay), n-at-ht)
	rt := util.Max(int(sr*e.Release), 0)

	window := make([]float64, n, n+rt)
	for i := range window {
		window[i] = 1
	}
	for i, v := range ramp(at, true, order(e.AttackOrder)) {
		window[i] = v
	}
	for i, v := range ramp(dt, false, order(e.DecayOrder)) {
		window[at+ht+i] = v*(1-e.Sustain) + e.Sustain
	}
	for i := at + ht + dt; i < n; i++ {
		window[i] = e.Sustain
	}
	for _, v := range ramp(rt, false, order(e.ReleaseOrder)) {
		window = append(window, v*e.Sustain)
	}
	return window
}
