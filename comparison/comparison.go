// Package comparison scores a learner's rendition of a phrase against a
// reference rendition and assembles the report handed to visualization.
package comparison

import (
	"fmt"
	"time"

	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/algorithms/similarity"
	"github.com/RyanBlaney/sonido-swara/comparison/config"
	"github.com/RyanBlaney/sonido-swara/logging"
	"github.com/google/uuid"
)

// ContourPoint is one retained frame on the pitch contour.
type ContourPoint struct {
	TimeSeconds float64 `json:"time_seconds"`
	FrequencyHz float64 `json:"frequency_hz"`
}

// Analysis holds everything derived from one rendition.
type Analysis struct {
	Sequence          notes.Sequence     `json:"sequence"`
	Distribution      notes.Distribution `json:"distribution"`
	SwaraDistribution notes.Distribution `json:"swara_distribution"`
	Contour           []ContourPoint     `json:"contour"`
}

// SimilarityReport holds the three similarity scores of a comparison.
type SimilarityReport struct {
	DistributionSimilarity  float64                    `json:"distribution_similarity"` // 0.0-1.0
	PatternSimilarity       float64                    `json:"pattern_similarity"`
	SwaraSimilarity         float64                    `json:"swara_similarity"` // 0.0-1.0
	PerNoteDifferenceScores map[string]float64         `json:"per_note_difference_scores"`
	SwaraMismatches         []similarity.SwaraMismatch `json:"swara_mismatches,omitempty"`
}

// Result is the outcome of comparing two renditions.
type Result struct {
	ID             string           `json:"id"`
	Reference      *Analysis        `json:"reference"`
	Attempt        *Analysis        `json:"attempt"`
	Report         SimilarityReport `json:"report"`
	ProcessingTime time.Duration    `json:"processing_time"`
}

// MelodyComparator compares pitch-frame streams. It holds no mutable state
// and is safe for concurrent use.
type MelodyComparator struct {
	config     config.ComparisonConfig
	tonicClass int
	logger     logging.Logger
}

// NewMelodyComparator validates cfg and builds a comparator. A nil cfg
// uses config.DefaultComparisonConfig.
func NewMelodyComparator(cfg *config.ComparisonConfig) (*MelodyComparator, error) {
	c := config.DefaultComparisonConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tonicClass, ok := notes.TonicPitchClass(c.TonicHz, c.ReferenceHz)
	if !ok {
		return nil, fmt.Errorf("%w: tonic %v Hz has no pitch class", config.ErrInvalidConfig, c.TonicHz)
	}

	return &MelodyComparator{
		config:     c,
		tonicClass: tonicClass,
		logger: logging.WithFields(logging.Fields{
			"component": "melody_comparator",
		}),
	}, nil
}

// Config returns the comparator configuration.
func (mc *MelodyComparator) Config() config.ComparisonConfig {
	return mc.config
}

// Compare runs frames through the pipeline with cfg and compares them.
func Compare(reference, attempt []notes.PitchFrame, cfg config.ComparisonConfig) (*Result, error) {
	mc, err := NewMelodyComparator(&cfg)
	if err != nil {
		return nil, err
	}
	return mc.Compare(reference, attempt)
}

// Analyze filters frames, builds the note sequence and distributions, and
// records the pitch contour of the retained frames.
func (mc *MelodyComparator) Analyze(frames []notes.PitchFrame) *Analysis {
	retained := notes.RetainFrames(frames, mc.config.ConfidenceThreshold)

	contour := make([]ContourPoint, len(retained))
	for i, f := range retained {
		contour[i] = ContourPoint{
			TimeSeconds: f.TimeSeconds(mc.config.HopLength, mc.config.SampleRate),
			FrequencyHz: f.FrequencyHz,
		}
	}

	seq := notes.Compress(notes.Ingest(retained, mc.config.ConfidenceThreshold, mc.config.ReferenceHz))
	dist := notes.NewDistribution(seq)

	return &Analysis{
		Sequence:          seq,
		Distribution:      dist,
		SwaraDistribution: notes.ToSwaraDistribution(dist, mc.tonicClass),
		Contour:           contour,
	}
}

// Compare analyzes both renditions and scores them against each other.
func (mc *MelodyComparator) Compare(reference, attempt []notes.PitchFrame) (*Result, error) {
	startTime := time.Now()

	ref := mc.Analyze(reference)
	att := mc.Analyze(attempt)

	distributionScore, perNote := similarity.DistributionSimilarity(ref.Distribution, att.Distribution)
	swara := similarity.SwaraSimilarity(ref.SwaraDistribution, att.SwaraDistribution)

	result := &Result{
		ID:        uuid.NewString(),
		Reference: ref,
		Attempt:   att,
		Report: SimilarityReport{
			DistributionSimilarity:  distributionScore,
			PatternSimilarity:       similarity.PatternSimilarity(ref.Sequence, att.Sequence),
			SwaraSimilarity:         swara.Score,
			PerNoteDifferenceScores: perNote,
			SwaraMismatches:         swara.Mismatches,
		},
	}
	result.ProcessingTime = time.Since(startTime)

	mc.logger.Debug("Melody comparison completed", logging.Fields{
		"id":                      result.ID,
		"reference_frames":        len(reference),
		"attempt_frames":          len(attempt),
		"reference_notes":         len(ref.Sequence),
		"attempt_notes":           len(att.Sequence),
		"distribution_similarity": result.Report.DistributionSimilarity,
		"pattern_similarity":      result.Report.PatternSimilarity,
		"swara_similarity":        result.Report.SwaraSimilarity,
	})

	return result, nil
}
