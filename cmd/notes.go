package cmd

import (
	"fmt"

	"github.com/RyanBlaney/sonido-swara/comparison"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <audio>",
	Short: "Print the note sequence and distributions of one recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext(cmd)
		defer stop()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		comparator, err := comparison.NewMelodyComparator(&cfg)
		if err != nil {
			return err
		}
		source, err := newFrameSource(cfg)
		if err != nil {
			return err
		}

		frames, err := source.Frames(ctx, args[0])
		if err != nil {
			return fmt.Errorf("%w: %s: %w", comparison.ErrSourceFailed, args[0], err)
		}

		return writeJSON(cmd, comparator.Analyze(frames))
	},
}
