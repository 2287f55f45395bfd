package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/RyanBlaney/sonido-swara/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "swara",
	Short: "Compare sung or played phrases note by note",
	Long: `swara extracts the note sequence of a reference recording and a learner's
attempt and scores how closely they match: note distribution, note pattern
and swara (scale degree) similarity.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		// stdout carries the JSON report, every log line goes to stderr
		errOut := cmd.ErrOrStderr()
		logger := logging.NewDefaultLoggerWithWriters(errOut, errOut, !noColor && logging.IsTerminal(errOut))
		logger.SetLevel(level)
		logging.SetGlobalLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON comparison config (defaults apply to missing fields)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// commandContext returns the command's context, cancelled on interrupt.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}
