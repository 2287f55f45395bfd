package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/RyanBlaney/sonido-swara/comparison"
	"github.com/RyanBlaney/sonido-swara/comparison/config"
	"github.com/RyanBlaney/sonido-swara/logging"
	"github.com/RyanBlaney/sonido-swara/tracking"
	"github.com/RyanBlaney/sonido-swara/transcode"
	"github.com/RyanBlaney/sonido-swara/visualization"
	"github.com/spf13/cobra"
)

var plotsDir string

func init() {
	compareCmd.Flags().StringVar(&plotsDir, "plots", "", "write distribution, contour and similarity charts into this directory")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <attempt>",
	Short: "Compare an attempt against a reference recording",
	Args:  cobra.ExactArgs(2),
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

		result, err := comparator.CompareSources(ctx, source, args[0], args[1])
		if err != nil {
			return err
		}

		if plotsDir != "" {
			labels := visualization.Labels{
				Reference: filepath.Base(args[0]),
				Attempt:   filepath.Base(args[1]),
			}
			paths, err := visualization.RenderAll(result, labels, plotsDir)
			if err != nil {
				return err
			}
			logging.Info("Charts written", logging.Fields{"paths": paths})
		}

		return writeJSON(cmd, result)
	},
}

func loadConfig() (config.ComparisonConfig, error) {
	if configPath == "" {
		return config.DefaultComparisonConfig(), nil
	}
	return config.LoadComparisonConfig(configPath)
}

// newFrameSource is replaced in tests to run commands without ffmpeg.
var newFrameSource = func(cfg config.ComparisonConfig) (comparison.FrameSource, error) {
	return newAudioSource(cfg)
}

// newAudioSource builds a decoder and tracker sharing the comparison's
// sample rate and hop.
func newAudioSource(cfg config.ComparisonConfig) (*comparison.AudioFrameSource, error) {
	decoderCfg := transcode.DefaultDecoderConfig()
	decoderCfg.TargetSampleRate = cfg.SampleRate

	tracker, err := tracking.NewTracker(config.TrackerConfigFor(cfg))
	if err != nil {
		return nil, err
	}
	return comparison.NewAudioFrameSource(transcode.NewDecoder(decoderCfg), tracker)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
