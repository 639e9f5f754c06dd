// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/polysynth/audio"
	"github.com/ik5/polysynth/internal/pcm"
)

// Writer streams 16-bit big-endian PCM into an AIFF container.
type Writer = pcm.Writer

// NewWriter writes an AIFF header to ws and returns a Writer for
// interleaved samples. Chunk sizes and the frame count are backpatched
// when the Writer is closed.
func NewWriter(ws io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if err := pcm.ValidateFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	enc := goaiff.NewEncoder(ws, sampleRate, pcm.BitDepth, channels)
	return pcm.NewWriter(enc, sampleRate, channels)
}

// Encoder registers AIFF output with an audio.Registry.
type Encoder struct{}

func (Encoder) NewWriter(ws io.WriteSeeker, sampleRate, channels int) (audio.FrameWriter, error) {
	w, err := NewWriter(ws, sampleRate, channels)
	if err != nil {
		return nil, err
	}
	return w, nil
}
