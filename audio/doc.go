// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the synthesizer
// and the container writers.
//
// This package contains:
//   - Source interface for pulling interleaved frames
//   - FrameWriter and Encoder interfaces for output containers
//   - MonoMixer for channel mixing
//   - Format registry for encoder lookup by file extension
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// A score player and a MonoMixer both implement it, so they can be chained:
//
//	mono := audio.NewMonoMixer(player)
//	buf := make([]float64, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Writing
//
// Writers are created by an Encoder on an io.WriteSeeker, because container
// headers carry sizes that are only known once every frame has been
// written:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Encoder{})
//	enc, err := registry.ForPath("song.wav")
//	w, err := enc.NewWriter(file, 44100, 2)
//	err = w.WriteSamples(buf[:n])
//	err = w.Close()
//
// # Sample Format
//
// Samples are float64 and nominally in [-1.0, 1.0]. Sources do not clamp:
// a mix of several loud voices may exceed that range, and it is up to the
// writer to saturate when converting to fixed-point PCM.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
