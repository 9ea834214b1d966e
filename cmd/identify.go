package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsphweid/munotes/chord"
	"github.com/jsphweid/munotes/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify [file.mid]",
	Short: "Names the chords in a MIDI file",
	Long:  `Walks a MIDI file and prints every change in the set of sounding keys that spells a known chord.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		identify(args[0])
	},
}

func identify(path string) {
	s, err := midi.ReadMidiFile(path)
	cobra.CheckErr(err)

	snapshots := chord.Snapshots(midi.ReducedEvents(s))
	for _, is := range chord.IdentifySnapshots(snapshots) {
		offset := time.Duration(is.Offset) * time.Microsecond
		names := "?"
		if len(is.Chords) > 0 {
			names = strings.Join(is.Chords, " | ")
		}
		fmt.Printf("%v\t%v\t%v\n", offset, names, is.Keys)
	}
}
