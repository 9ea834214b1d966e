package cmd

import (
	"fmt"

	"github.com/jsphweid/munotes/note"
	"github.com/spf13/cobra"
)

var transposeBy int

func init() {
	transposeCmd.Flags().IntVarP(&transposeBy, "semitones", "s", 0, "semitones to move by, may be negative")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [items...]",
	Short: "Transposes a sequence of notes and rests",
	Long: `Transposes every note by --semitones. Rests are written as "r". Nothing
is printed if any note would leave the MIDI range.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ns, err := note.ParseNotes(args)
		cobra.CheckErr(err)
		cobra.CheckErr(ns.Transpose(transposeBy))
		fmt.Println(ns)
	},
}
