package wav

import "github.com/ik5/polysynth/internal/pcm"

var (
	ErrInvalidSampleRate = pcm.ErrInvalidSampleRate
	ErrInvalidChannels   = pcm.ErrInvalidChannels
	ErrPartialFrame      = pcm.ErrPartialFrame
	ErrClosed            = pcm.ErrClosed
)
