// SPDX-License-Identifier: EPL-2.0

// Package wav writes 16-bit PCM WAV files.
//
// It uses github.com/go-audio/wav for the RIFF encoding, so the writer
// needs an io.WriteSeeker: the RIFF and data chunk sizes are only known
// once every frame has been written, and are backpatched on Close.
//
// # Writing WAV Files
//
//	file, _ := os.Create("song.wav")
//	defer file.Close()
//
//	w, err := wav.NewWriter(file, 44100, 2)
//	if err != nil {
//	    // Handle error
//	}
//	err = w.WriteSamples([]float64{0.5, 0.5, -0.25, -0.25})
//	err = w.Close()
//
// Samples are interleaved float64 values. They are saturated to [-1,1]
// and scaled by 32767 before being stored.
//
// # File Format
//
// The header is the canonical 44 bytes:
//   - RIFF header (12 bytes): "RIFF", file size - 8, "WAVE"
//   - fmt chunk (24 bytes): PCM tag, channels, sample rate,
//     byte rate = rate×channels×2, block align = channels×2, 16 bits
//   - data chunk header (8 bytes): "data", sample bytes
//
// # Error Handling
//
//   - ErrInvalidSampleRate, ErrInvalidChannels: rejected by NewWriter
//   - ErrPartialFrame: a write that does not end on a frame boundary
//   - ErrClosed: a write after Close
//
// I/O errors from the underlying writer are wrapped and returned.
package wav
