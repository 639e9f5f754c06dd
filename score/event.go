// SPDX-License-Identifier: EPL-2.0

package score

import (
	"strconv"

	"github.com/ik5/polysynth/synth"
)

// Event is one decoded score command.
type Event interface {
	// Apply performs the command on pool and reports whether the pool
	// changed. A false result is not an error: it means a note-on found
	// no free voice or a note-off found no sounding one.
	Apply(pool *synth.Pool) bool
	String() string
}

// NoteOn starts a note.
type NoteOn struct {
	Frequency float64
	Amplitude float64
}

func (e NoteOn) Apply(pool *synth.Pool) bool {
	_, ok := pool.Allocate(e.Frequency, e.Amplitude)
	return ok
}

func (e NoteOn) String() string {
	return "NOTE ON " + formatFloat(e.Frequency) + " " + formatFloat(e.Amplitude)
}

// NoteOff stops the first note sounding at exactly Frequency.
type NoteOff struct {
	Frequency float64
}

func (e NoteOff) Apply(pool *synth.Pool) bool {
	_, ok := pool.Release(e.Frequency)
	return ok
}

func (e NoteOff) String() string {
	return "NOTE OFF " + formatFloat(e.Frequency)
}

// SetInstrument changes the instrument of notes started afterwards.
type SetInstrument struct {
	Instrument synth.Instrument
}

func (e SetInstrument) Apply(pool *synth.Pool) bool {
	pool.SetInstrument(e.Instrument)
	return true
}

func (e SetInstrument) String() string {
	return "INSTRUMENT " + e.Instrument.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
