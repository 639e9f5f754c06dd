package aiff

import "github.com/ik5/polysynth/internal/pcm"

var (
	// ErrInvalidSampleRate indicates a non-positive sample rate
	ErrInvalidSampleRate = pcm.ErrInvalidSampleRate

	// ErrInvalidChannels indicates a channel count the header cannot hold
	ErrInvalidChannels = pcm.ErrInvalidChannels

	// ErrPartialFrame indicates a write that does not end on a frame boundary
	ErrPartialFrame = pcm.ErrPartialFrame

	// ErrClosed indicates a write after Close
	ErrClosed = pcm.ErrClosed
)
