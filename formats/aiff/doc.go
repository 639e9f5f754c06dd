// SPDX-License-Identifier: EPL-2.0

// Package aiff writes 16-bit PCM AIFF files.
//
// This package uses github.com/go-audio/aiff for the encoding. It is the
// alternate output container of polysynth, selected by a .aif or .aiff
// output extension.
//
//	file, _ := os.Create("song.aiff")
//	w, err := aiff.NewWriter(file, 44100, 2)
//	err = w.WriteSamples(frames)
//	err = w.Close()
//
// Samples are converted exactly like the WAV writer does, then stored
// big-endian. Chunk sizes and the COMM frame count are backpatched on
// Close.
package aiff
