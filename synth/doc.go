// SPDX-License-Identifier: EPL-2.0

// Package synth is the voice-allocation and rendering engine of polysynth.
//
// A Pool holds a fixed number of Voice slots. Allocate starts a note in the
// first free slot, Release stops the first sounding note with exactly the
// given frequency, and RenderFrame mixes all sounding notes into one stereo
// frame:
//
//	pool, _ := synth.NewPool(synth.DefaultVoices, synth.DefaultSampleRate)
//	pool.SetInstrument(synth.Violin)
//	pool.Allocate(440, 0.5)
//
//	buf := make([]float64, 1024*synth.Channels)
//	pool.Render(buf)
//
// # Instruments
//
// Each Instrument is a fixed sum of weighted sine harmonics (see Waveform):
//
//	Piano    sin(θ)  + 0.3·sin(2θ) + 0.2·sin(3θ)
//	Violin   sin(2θ) + 0.4·sin(4θ) + 0.3·sin(6θ)
//	Trumpet  sin(θ)  + 0.5·sin(3θ) + 0.4·sin(5θ)
//
// # Limits
//
// Nothing in this package fails once a Pool exists. A note-on with every
// slot busy is dropped, a note-off with no matching voice is ignored, and
// mixed frames are not clamped: converting to a fixed-point format is the
// writer's job.
package synth
