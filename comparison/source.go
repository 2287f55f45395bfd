package comparison

import (
	"context"
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/logging"
	"github.com/RyanBlaney/sonido-swara/tracking"
	"github.com/RyanBlaney/sonido-swara/transcode"
)

// ErrSourceFailed wraps failures to obtain pitch frames for a rendition.
// Such failures are never reported as a silent rendition.
var ErrSourceFailed = errors.New("pitch source failed")

// FrameSource produces the pitch frames of an audio source.
type FrameSource interface {
	Frames(ctx context.Context, path string) ([]notes.PitchFrame, error)
}

// AudioFrameSource decodes audio files with ffmpeg and tracks their pitch.
type AudioFrameSource struct {
	decoder *transcode.Decoder
	tracker *tracking.Tracker
}

// NewAudioFrameSource pairs a decoder with a tracker. The decoder's target
// sample rate must match the tracker's.
func NewAudioFrameSource(decoder *transcode.Decoder, tracker *tracking.Tracker) (*AudioFrameSource, error) {
	if decoder == nil || tracker == nil {
		return nil, fmt.Errorf("decoder and tracker are required")
	}
	decoderRate := decoder.Config().TargetSampleRate
	trackerRate := tracker.Config().SampleRate
	if decoderRate != trackerRate {
		return nil, fmt.Errorf("decoder sample rate %d does not match tracker sample rate %d", decoderRate, trackerRate)
	}
	if decoder.Config().TargetChannels != 1 {
		return nil, fmt.Errorf("tracker needs mono audio, decoder produces %d channels", decoder.Config().TargetChannels)
	}
	return &AudioFrameSource{decoder: decoder, tracker: tracker}, nil
}

// Frames decodes path and returns its pitch frames.
func (s *AudioFrameSource) Frames(ctx context.Context, path string) ([]notes.PitchFrame, error) {
	audio, err := s.decoder.DecodeFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.tracker.Track(ctx, audio.PCM)
}

// CompareSources pulls frames for both renditions from src and compares
// them. Source failures are returned wrapped in ErrSourceFailed together
// with the underlying error.
func (mc *MelodyComparator) CompareSources(ctx context.Context, src FrameSource, referencePath, attemptPath string) (*Result, error) {
	logger := mc.logger.WithContext(ctx)

	reference, err := src.Frames(ctx, referencePath)
	if err != nil {
		logger.Error(err, "Failed to load reference", logging.Fields{"path": referencePath})
		return nil, fmt.Errorf("%w: reference %s: %w", ErrSourceFailed, referencePath, err)
	}

	attempt, err := src.Frames(ctx, attemptPath)
	if err != nil {
		logger.Error(err, "Failed to load attempt", logging.Fields{"path": attemptPath})
		return nil, fmt.Errorf("%w: attempt %s: %w", ErrSourceFailed, attemptPath, err)
	}

	return mc.Compare(reference, attempt)
}
