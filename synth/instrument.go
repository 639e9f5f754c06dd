// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"strings"
)

// Instrument selects the harmonic recipe a voice is rendered with.
type Instrument int

const (
	Piano Instrument = iota
	Violin
	Trumpet
)

var instrumentNames = [...]string{
	Piano:   "piano",
	Violin:  "violin",
	Trumpet: "trumpet",
}

func (i Instrument) String() string {
	if !i.Valid() {
		return "unknown"
	}
	return instrumentNames[i]
}

// Valid reports whether i is one of the known instruments.
func (i Instrument) Valid() bool {
	return i >= Piano && i <= Trumpet
}

// ParseInstrument accepts an instrument name in any case, or the numeric
// codes 0, 1 and 2 used by older score files.
func ParseInstrument(name string) (Instrument, error) {
	switch strings.ToLower(name) {
	case "piano", "0":
		return Piano, nil
	case "violin", "1":
		return Violin, nil
	case "trumpet", "2":
		return Trumpet, nil
	}
	return 0, ErrUnknownInstrument
}

// partial is one sine term of a recipe: weight * sin(harmonic * theta).
type partial struct {
	harmonic float64
	weight   float64
}

var recipes = [...][]partial{
	Piano:   {{1, 1}, {2, 0.3}, {3, 0.2}},
	Violin:  {{2, 1}, {4, 0.4}, {6, 0.3}},
	Trumpet: {{1, 1}, {3, 0.5}, {5, 0.4}},
}

// Waveform returns the unscaled signal of inst at phase, where phase is a
// fraction of one cycle in [0,1). Harmonics above Nyquist are not filtered.
func Waveform(inst Instrument, phase float64) float64 {
	if !inst.Valid() {
		return 0
	}

	theta := 2 * math.Pi * phase
	var v float64
	for _, p := range recipes[inst] {
		v += p.weight * math.Sin(p.harmonic*theta)
	}
	return v
}
