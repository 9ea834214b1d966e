package cmd

import (
	"fmt"

	"github.com/jsphweid/munotes/chord"
	"github.com/spf13/cobra"
)

var chordOctave int

func init() {
	chordCmd.Flags().IntVar(&chordOctave, "octave", 0, "root octave (defaults to the configured octave)")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord [name]",
	Short: "Spells a chord",
	Long:  `Spells a chord such as "C", "A#m7" or "F#dim7" from the root upward.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		octave := cfg.Octave
		if cmd.Flags().Changed("octave") {
			octave = chordOctave
		}
		c, err := chord.New(args[0], octave)
		cobra.CheckErr(err)

		fmt.Printf("chord: %v\n", c.Name())
		fmt.Printf("type: %v\n", c.Type())
		fmt.Printf("interval: %v\n", c.Intervals())
		fmt.Printf("notes: %v\n", c.Members())
	},
}
