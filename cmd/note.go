package cmd

import (
	"fmt"

	"github.com/jsphweid/munotes/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var noteFromMidi int

func init() {
	noteCmd.Flags().IntVar(&noteFromMidi, "midi", 0, "look up a MIDI number instead of a name")
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note [name]",
	Short: "Describes a note",
	Long:  `Describes a note given as "A", "A4", "Bb-1" or, with --midi, a MIDI number.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := lookupNote(args, cmd.Flags().Changed("midi"), noteFromMidi)
		cobra.CheckErr(err)
		printNote(n)
	},
}

func lookupNote(args []string, byMidi bool, num int) (note.Note, error) {
	switch {
	case byMidi:
		return note.FromMidi(num)
	case len(args) == 1:
		return note.Parse(args[0])
	}
	return note.Note{}, errors.New("need a note name or --midi")
}

func printNote(n note.Note) {
	fmt.Printf("note: %v\n", n)
	fmt.Printf("idx: %v\n", n.Index())
	if num, ok := n.Midi(); ok {
		freq, _ := n.Frequency()
		fmt.Printf("midi: %v\n", num)
		fmt.Printf("freq: %.3f\n", freq)
	}
}
