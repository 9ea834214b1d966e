package cmd

import (
	"github.com/jsphweid/munotes/config"
	"github.com/jsphweid/munotes/constants"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "munotes",
	Short: "Notes, chords and pitch math",
	Long: `munotes works with pitch classes, notes, rests and chords: look them up,
transpose them, identify chords in MIDI and render or export sequences.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", constants.GetConfigPath(), "YAML config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
