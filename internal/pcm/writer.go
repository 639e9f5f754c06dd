// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio style encoders to audio.FrameWriter.
package pcm

import (
	"errors"
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/polysynth/utils"
)

// BitDepth is the only sample size the writers produce.
const BitDepth = 16

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be between 1 and 65535")
	ErrPartialFrame      = errors.New("sample count must be multiple of channels")
	ErrClosed            = errors.New("writer is closed")
)

// IntEncoder is the streaming API shared by go-audio/wav and go-audio/aiff.
type IntEncoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Writer converts float64 frames to 16-bit PCM and hands them to an
// IntEncoder. It does not close the underlying file.
type Writer struct {
	enc      IntEncoder
	buf      *goaudio.IntBuffer
	channels int
	frames   int
	closed   bool
}

// ValidateFormat checks arguments shared by every container.
func ValidateFormat(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if channels <= 0 || channels > 0xffff {
		return ErrInvalidChannels
	}
	return nil
}

// NewWriter wraps enc and writes the container header right away, so that
// closing a writer that never received frames still yields a valid file.
func NewWriter(enc IntEncoder, sampleRate, channels int) (*Writer, error) {
	if err := ValidateFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	w := &Writer{
		enc: enc,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, 0, 4096),
			SourceBitDepth: BitDepth,
		},
		channels: channels,
	}

	if err := enc.Write(w.buf); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	return w, nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// WriteSamples encodes interleaved samples. Values outside [-1,1] are
// saturated.
func (w *Writer) WriteSamples(src []float64) error {
	if w.closed {
		return ErrClosed
	}
	if len(src)%w.channels != 0 {
		return ErrPartialFrame
	}
	if len(src) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(src) {
		w.buf.Data = make([]int, len(src))
	}
	w.buf.Data = w.buf.Data[:len(src)]
	utils.Float64sToPCM16(w.buf.Data, src)

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}

	w.frames += len(src) / w.channels
	return nil
}

// Close backpatches the container sizes. Calling it again is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing container: %w", err)
	}
	return nil
}
