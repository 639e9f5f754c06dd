// SPDX-License-Identifier: EPL-2.0

package polysynth

import (
	"fmt"
	"io"

	"github.com/ik5/polysynth/audio"
	"github.com/ik5/polysynth/score"
	"github.com/ik5/polysynth/synth"
)

// Config selects the engine parameters used by RenderScore.
type Config struct {
	SampleRate  int  // output rate in Hz
	Voices      int  // polyphony
	BlockFrames int  // frames rendered per score line
	Mono        bool // downmix to one channel before writing
}

// DefaultConfig returns the reference engine settings: 44100 Hz, 16 voices,
// 1024 frames per score line, stereo output.
func DefaultConfig() Config {
	return Config{
		SampleRate:  synth.DefaultSampleRate,
		Voices:      synth.DefaultVoices,
		BlockFrames: score.DefaultBlockFrames,
	}
}

func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.Voices <= 0:
		return fmt.Errorf("%w: voices %d", ErrInvalidConfig, c.Voices)
	case c.BlockFrames <= 0:
		return fmt.Errorf("%w: block frames %d", ErrInvalidConfig, c.BlockFrames)
	}
	return nil
}

// Render copies every sample of src into w using a buffer of bufferSize
// frames, then closes w. It returns the number of frames written. w is
// closed on failure as well, so the container describes the frames that
// did reach it; the first error is the one returned. src is not closed.
func Render(src audio.Source, w audio.FrameWriter, bufferSize int) (int, error) {
	frames, err := pump(src, w, bufferSize)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing writer: %w", cerr)
	}
	return frames, err
}

func pump(src audio.Source, w audio.FrameWriter, bufferSize int) (int, error) {
	channels := src.Channels()
	if bufferSize <= 0 {
		bufferSize = max(src.BufSize()/channels, 1)
	}
	buf := make([]float64, bufferSize*channels)

	frames := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := w.WriteSamples(buf[:n]); werr != nil {
				return frames, fmt.Errorf("writing samples: %w", werr)
			}
			frames += n / channels
		}

		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("reading samples: %w", err)
		}
	}
}

// RenderScore plays the score read from r and writes it to ws in the
// container produced by enc. Malformed score lines are skipped and counted
// in the returned Stats; errors come only from reading r or writing ws.
// When reading r fails partway, ws still holds a finalized container with
// the frames rendered up to that point.
func RenderScore(r io.Reader, ws io.WriteSeeker, enc audio.Encoder, cfg Config, opts ...score.Option) (score.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return score.Stats{}, err
	}

	pool, err := synth.NewPool(cfg.Voices, cfg.SampleRate)
	if err != nil {
		return score.Stats{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	opts = append(opts, score.WithBlockFrames(cfg.BlockFrames))
	player := score.NewPlayer(r, pool, opts...)
	defer player.Close()

	var src audio.Source = player
	if cfg.Mono {
		src = audio.NewMonoMixer(player)
	}

	w, err := enc.NewWriter(ws, src.SampleRate(), src.Channels())
	if err != nil {
		return score.Stats{}, fmt.Errorf("creating writer: %w", err)
	}

	if _, err := Render(src, w, cfg.BlockFrames); err != nil {
		return player.Stats(), err
	}
	return player.Stats(), nil
}
