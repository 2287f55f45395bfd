package transcode

import (
	"context"
	"encoding/binary"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFFprobeOutput(t *testing.T) {
	t.Parallel()

	t.Run("audio stream", func(t *testing.T) {
		t.Parallel()
		out := []byte(`{"streams":[{"codec_type":"audio","codec_name":"opus","sample_rate":"48000","channels":2,"duration":"3.5","bit_rate":"64000","codec_long_name":"Opus"}]}`)
		meta, err := parseFFprobeOutput(out)
		require.NoError(t, err)
		assert.Equal(t, &AudioMetadata{
			SampleRate: 48000,
			Channels:   2,
			Codec:      "opus",
			Duration:   3.5,
			Bitrate:    64000,
			Format:     "Opus",
		}, meta)
	})

	t.Run("missing optional fields fall back", func(t *testing.T) {
		t.Parallel()
		meta, err := parseFFprobeOutput([]byte(`{"streams":[{"codec_type":"audio","channels":1}]}`))
		require.NoError(t, err)
		assert.Equal(t, 44100, meta.SampleRate)
		assert.Zero(t, meta.Duration)
	})

	failures := map[string]string{
		"not json":       `nope`,
		"no streams":     `{"streams":[]}`,
		"video stream":   `{"streams":[{"codec_type":"video","channels":1}]}`,
		"zero channels":  `{"streams":[{"codec_type":"audio","channels":0}]}`,
		"too many chans": `{"streams":[{"codec_type":"audio","channels":12}]}`,
	}
	for name, in := range failures {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := parseFFprobeOutput([]byte(in))
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestBytesToFloat64(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 0, 20)
	for _, v := range []float64{0.5, -1} {
		raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(v))
	}
	raw = append(raw, 1, 2, 3) // trailing partial sample

	assert.Equal(t, []float64{0.5, -1}, bytesToFloat64(raw))
	assert.Nil(t, bytesToFloat64([]byte{1, 2}))
}

func TestBuildFFmpegArgs(t *testing.T) {
	t.Parallel()

	d := NewDecoder(nil)
	args := d.buildFFmpegArgs(&AudioMetadata{SampleRate: 22050})
	assert.Equal(t, []string{"-f", "f64le", "-ac", "1", "-ar", "22050", "-v", "error"}, args)

	cfg := DefaultDecoderConfig()
	cfg.EnableNormalization = true
	cfg.MaxDuration = 10 * time.Second
	args = NewDecoder(cfg).buildFFmpegArgs(&AudioMetadata{SampleRate: 48000})
	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-af aresample=resampler=soxr:precision=20,loudnorm=I=-16.0:TP=-1.0:LRA=8.0")
	assert.Contains(t, joined, "-t 10.00")
}

func TestDecodeFailuresWrapErrDecode(t *testing.T) {
	t.Parallel()

	cfg := DefaultDecoderConfig()
	cfg.FFprobePath = filepath.Join(t.TempDir(), "missing-ffprobe")
	d := NewDecoder(cfg)
	ctx := context.Background()

	_, err := d.DecodeFile(ctx, "take.wav")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = d.DecodeBytes(ctx, nil)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = d.DecodeReader(ctx, strings.NewReader("not audio"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewDecoder(nil).ValidateConfig())

	cfg := DefaultDecoderConfig()
	cfg.TargetChannels = 0
	assert.Error(t, NewDecoder(cfg).ValidateConfig())

	cfg = DefaultDecoderConfig()
	cfg.TargetSampleRate = -1
	assert.Error(t, NewDecoder(cfg).ValidateConfig())
}
