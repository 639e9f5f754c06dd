// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"testing"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/polysynth/internal/audiotest"
)

func TestWriter_ContainerMarkers(t *testing.T) {
	t.Parallel()

	buf := &audiotest.Buffer{}
	w, err := NewWriter(buf, 44100, 2)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.WriteSamples([]float64{0.5, -0.5}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) < 12 {
		t.Fatalf("AIFF file too small: %d bytes", len(data))
	}
	if string(data[0:4]) != "FORM" {
		t.Errorf("FORM marker = %q, want \"FORM\"", string(data[0:4]))
	}
	if string(data[8:12]) != "AIFF" {
		t.Errorf("AIFF marker = %q, want \"AIFF\"", string(data[8:12]))
	}
}

func TestWriter_DecodesWithGoAudio(t *testing.T) {
	t.Parallel()

	samples := []float64{0, 0, 0.25, -0.25, 0.5, -0.5, 1.5, -1.5}

	buf := &audiotest.Buffer{}
	w, err := NewWriter(buf, 48000, 2)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	// Two writes exercise streaming into one SSND chunk.
	if err := w.WriteSamples(samples[:4]); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := w.WriteSamples(samples[4:]); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if w.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", w.Frames())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	dec := goaiff.NewDecoder(bytes.NewReader(buf.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("go-audio decoder rejected the file")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if pcm.Format.NumChannels != 2 {
		t.Errorf("NumChannels = %d, want 2", pcm.Format.NumChannels)
	}
	if pcm.Format.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", pcm.Format.SampleRate)
	}

	want := []int{0, 0, 8191, -8191, 16383, -16383, 32767, -32767}
	if len(pcm.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(pcm.Data), len(want))
	}
	for i := range want {
		if pcm.Data[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, pcm.Data[i], want[i])
		}
	}
}

func TestNewWriter_InvalidArguments(t *testing.T) {
	t.Parallel()

	if _, err := NewWriter(&audiotest.Buffer{}, 0, 2); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewWriter() error = %v, want %v", err, ErrInvalidSampleRate)
	}
	if _, err := NewWriter(&audiotest.Buffer{}, 44100, 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewWriter() error = %v, want %v", err, ErrInvalidChannels)
	}
}

func TestEncoder_ReturnsFrameWriter(t *testing.T) {
	t.Parallel()

	fw, err := Encoder{}.NewWriter(&audiotest.Buffer{}, 44100, 2)
	if err != nil {
		t.Fatalf("Encoder.NewWriter() error = %v", err)
	}
	if err := fw.WriteSamples([]float64{0.1, 0.1}); err != nil {
		t.Errorf("WriteSamples() error = %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	fw, err = Encoder{}.NewWriter(&audiotest.Buffer{}, -1, 2)
	if err == nil || fw != nil {
		t.Errorf("Encoder.NewWriter() = (%v, %v), want (nil, error)", fw, err)
	}
}
