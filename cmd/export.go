package cmd

import (
	"fmt"

	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/midi"
	"github.com/jsphweid/munotes/note"
	"github.com/jsphweid/munotes/util"
	"github.com/spf13/cobra"
)

var (
	exportChords bool
	exportBeats  float64
	exportOut    string
)

func init() {
	exportCmd.Flags().BoolVar(&exportChords, "chords", false, "treat arguments as chord names")
	exportCmd.Flags().Float64VarP(&exportBeats, "beats", "b", 1, "quarter notes every chord is held for")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (defaults to a new file in the output dir)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [items...]",
	Short: "Writes notes or chords to a MIDI file",
	Long: `Writes a sequence of notes and rests, one beat each, or with --chords a
sequence of chords held for --beats, as a standard MIDI file.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var steps []midi.Step
		var err error
		if exportChords {
			steps, err = chordSteps(args)
		} else {
			var ns *note.Notes
			ns, err = note.ParseNotes(args)
			cobra.CheckErr(err)
			steps, err = midi.NotesToSteps(ns)
		}
		cobra.CheckErr(err)

		path := exportOut
		if path == "" {
			path, err = util.NewOutputPath(cfg.OutDir, ".mid")
			cobra.CheckErr(err)
		}
		opts := midi.ExportOptions{
			Ticks:    cfg.Export.Ticks,
			BPM:      cfg.Export.BPM,
			Channel:  cfg.Export.Channel,
			Velocity: cfg.Export.Velocity,
		}
		cobra.CheckErr(midi.WriteMidiFile(path, steps, opts))
		fmt.Printf("wrote %v (%d steps)\n", path, len(steps))
	},
}

func chordSteps(names []string) ([]midi.Step, error) {
	chords := make([]chord.Chord, 0, len(names))
	for _, name := range names {
		c, err := chord.New(name, cfg.Octave)
		if err != nil {
			return nil, err
		}
		chords = append(chords, c)
	}
	return midi.ChordsToSteps(chords, exportBeats)
}
