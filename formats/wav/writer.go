// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/polysynth/audio"
	"github.com/ik5/polysynth/internal/pcm"
)

// wavPCM is the WAVE_FORMAT_PCM tag written in the fmt chunk.
const wavPCM = 1

// HeaderSize is the size of the canonical RIFF/WAVE header written before
// the sample data.
const HeaderSize = 44

// Writer streams 16-bit little-endian PCM into a RIFF/WAVE container.
type Writer = pcm.Writer

// NewWriter writes a WAV header to ws and returns a Writer for
// interleaved samples. The RIFF and data chunk sizes are backpatched when
// the Writer is closed, so ws must stay open until then.
func NewWriter(ws io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if err := pcm.ValidateFormat(sampleRate, channels); err != nil {
		return nil, err
	}

	enc := gowav.NewEncoder(ws, sampleRate, pcm.BitDepth, channels, wavPCM)
	return pcm.NewWriter(enc, sampleRate, channels)
}

// Encoder registers WAV output with an audio.Registry.
type Encoder struct{}

func (Encoder) NewWriter(ws io.WriteSeeker, sampleRate, channels int) (audio.FrameWriter, error) {
	w, err := NewWriter(ws, sampleRate, channels)
	if err != nil {
		return nil, err
	}
	return w, nil
}
