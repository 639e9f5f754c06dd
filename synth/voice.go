// SPDX-License-Identifier: EPL-2.0

package synth

// Voice is one sounding note. The zero value is an inactive slot.
type Voice struct {
	Active     bool
	Frequency  float64
	Amplitude  float64
	Phase      float64 // fraction of a cycle, always in [0,1)
	Increment  float64 // Frequency / sample rate, fixed at allocation
	Instrument Instrument
}

// sample returns the voice's contribution at its current phase.
func (v *Voice) sample() float64 {
	return Waveform(v.Instrument, v.Phase) * v.Amplitude
}

// advance moves the phase one frame forward, wrapping by subtraction so
// the accumulator never drifts beyond rounding error.
func (v *Voice) advance() {
	v.Phase += v.Increment
	for v.Phase >= 1.0 {
		v.Phase -= 1.0
	}
}
