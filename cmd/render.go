package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/config"
	"github.com/jsphweid/munotes/note"
	"github.com/jsphweid/munotes/synth"
	"github.com/jsphweid/munotes/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	renderChords   bool
	renderDuration float64
	renderEnvelope bool
	renderOut      string
	renderTracks   []string
)

func init() {
	renderCmd.Flags().BoolVar(&renderChords, "chords", false, "treat arguments as chord names")
	renderCmd.Flags().Float64VarP(&renderDuration, "duration", "d", 1, "length of every step, in the configured unit")
	renderCmd.Flags().BoolVar(&renderEnvelope, "envelope", false, "shape every step with the configured envelope")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output path (defaults to a new file in the output dir)")
	renderCmd.Flags().StringArrayVarP(&renderTracks, "track", "t", nil, `extra voice as "waveform:items", e.g. "square:C3 r G3"; repeatable`)
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [items...]",
	Short: "Renders notes or chords to a WAV file",
	Long: `Renders a sequence of notes and rests ("A4 r C#5") or, with --chords, of
chord names, one step each, and writes the mix as a 16-bit WAV file.
Every --track adds another voice with its own waveform, mixed with the
arguments.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && len(renderTracks) == 0 {
			cobra.CheckErr(errors.New("need items or --track"))
		}
		p := synthParams(cfg.Render, renderEnvelope)
		stream, err := buildStream(args, renderTracks, p)
		cobra.CheckErr(err)

		samples, err := stream.Render(p, cfg.Render.Release)
		cobra.CheckErr(err)

		path := renderOut
		if path == "" {
			path, err = util.NewOutputPath(cfg.OutDir, ".wav")
			cobra.CheckErr(err)
		}
		cobra.CheckErr(synth.WriteWavFile(path, samples, cfg.Render.SampleRate))
		fmt.Printf("wrote %v (%d tracks, %.2fs)\n", path, len(stream.Tracks), float64(len(samples))/float64(cfg.Render.SampleRate))
	},
}

func newTrack(items []string, voice *synth.Params) (*synth.Track, error) {
	steps, err := buildSynthSteps(items, renderChords, renderDuration, cfg.Octave)
	if err != nil {
		return nil, err
	}
	track, err := synth.NewTrack(steps, synth.Unit(cfg.Render.Unit), cfg.Render.BPM)
	if err != nil {
		return nil, err
	}
	track.Voice = voice
	return track, nil
}

// buildStream turns the positional items into the first track and every
// "waveform:items" spec into another one.
func buildStream(args []string, specs []string, base synth.Params) (*synth.Stream, error) {
	s := &synth.Stream{}
	if len(args) > 0 {
		track, err := newTrack(args, nil)
		if err != nil {
			return nil, err
		}
		s.Tracks = append(s.Tracks, track)
	}
	for _, spec := range specs {
		waveform, items, ok := strings.Cut(spec, ":")
		fields := strings.Fields(items)
		if !ok || len(fields) == 0 {
			return nil, errors.Errorf("track %q should look like \"waveform:items\"", spec)
		}
		voice := base
		voice.Waveform = synth.Waveform(strings.TrimSpace(waveform))
		track, err := newTrack(fields, &voice)
		if err != nil {
			return nil, errors.Wrapf(err, "track %q", spec)
		}
		s.Tracks = append(s.Tracks, track)
	}
	return s, nil
}

func buildSynthSteps(args []string, chords bool, duration float64, octave int) ([]synth.Step, error) {
	steps := make([]synth.Step, 0, len(args))
	for _, arg := range args {
		if chords {
			if arg == note.RestGlyph {
				steps = append(steps, synth.NoteStep(note.Rest{}, duration))
				continue
			}
			c, err := chord.New(arg, octave)
			if err != nil {
				return nil, err
			}
			steps = append(steps, synth.ChordStep(c, duration))
			continue
		}
		it, err := note.ParseItem(arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, synth.NoteStep(it, duration))
	}
	return steps, nil
}

func synthParams(rc config.RenderConfig, withEnvelope bool) synth.Params {
	p := synth.Params{
		Waveform:   synth.Waveform(rc.Waveform),
		SampleRate: rc.SampleRate,
	}
	if !withEnvelope {
		return p
	}
	if rc.Envelope == (config.EnvelopeConfig{}) {
		p.Envelope = synth.DefaultEnvelope()
		return p
	}
	p.Envelope = &synth.Envelope{
		Attack:       rc.Envelope.Attack,
		Hold:         rc.Envelope.Hold,
		Decay:        rc.Envelope.Decay,
		Sustain:      rc.Envelope.Sustain,
		Release:      rc.Envelope.Release,
		AttackOrder:  rc.Envelope.AttackOrder,
		DecayOrder:   rc.Envelope.DecayOrder,
		ReleaseOrder: rc.Envelope.ReleaseOrder,
	}
	return p
}
