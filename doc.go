// SPDX-License-Identifier: EPL-2.0

// Package polysynth renders note scores to audio files with a polyphonic
// additive synthesizer.
//
// The engine lives in the synth subpackage: a fixed pool of voices, each a
// sum of weighted harmonics (Piano, Violin or Trumpet) advanced by a phase
// accumulator. The score subpackage reads text commands and drives the
// pool one block at a time, exposing the result as an audio.Source.
//
// # Quick Start
//
// RenderScore wires the pieces together:
//
//	in, _ := os.Open("song.txt")
//	out, _ := os.Create("song.wav")
//	stats, err := polysynth.RenderScore(in, out, wav.Encoder{}, polysynth.DefaultConfig())
//
// # Pipelines
//
// For more control, build the pipeline by hand:
//
//	pool, _ := synth.NewPool(16, 44100)
//	player := score.NewPlayer(in, pool, score.WithBlockFrames(512))
//	mono := audio.NewMonoMixer(player)
//	w, _ := aiff.NewWriter(out, mono.SampleRate(), mono.Channels())
//	frames, err := polysynth.Render(mono, w, 4096)
//
// # Output Formats
//
// Writers produce 16-bit PCM:
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//
// Samples are mixed without limiting. Values outside [-1,1] are saturated
// only when converted to PCM; score.Stats reports the peak so callers can
// detect it.
package polysynth
