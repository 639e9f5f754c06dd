// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const (
	// DefaultVoices is the polyphony of the reference engine.
	DefaultVoices = 16
	// DefaultSampleRate is the engine's output rate in Hz.
	DefaultSampleRate = 44100
	// Channels is the number of interleaved values per rendered frame.
	Channels = 2
)

// Pool is a fixed-capacity arena of voices. Slots are addressed by index
// and scanned in increasing order, so allocation and release are
// deterministic. A Pool is not safe for concurrent use.
type Pool struct {
	voices     []Voice
	active     int
	sampleRate float64
	instrument Instrument
}

// NewPool creates a pool with capacity voice slots rendering at sampleRate.
func NewPool(capacity, sampleRate int) (*Pool, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Pool{
		voices:     make([]Voice, capacity),
		sampleRate: float64(sampleRate),
		instrument: Piano,
	}, nil
}

func (p *Pool) Cap() int               { return len(p.voices) }
func (p *Pool) Active() int            { return p.active }
func (p *Pool) SampleRate() int        { return int(p.sampleRate) }
func (p *Pool) Instrument() Instrument { return p.instrument }

// Voice returns a copy of slot i.
func (p *Pool) Voice(i int) Voice { return p.voices[i] }

// SetInstrument changes the instrument given to voices allocated from now
// on. Voices already sounding keep theirs.
func (p *Pool) SetInstrument(inst Instrument) {
	p.instrument = inst
}

// Allocate starts a note in the first free slot and returns that slot.
// When every slot is busy, or frequency is not a positive finite number,
// the note is dropped and ok is false.
func (p *Pool) Allocate(frequency, amplitude float64) (slot int, ok bool) {
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return -1, false
	}

	for i := range p.voices {
		v := &p.voices[i]
		if v.Active {
			continue
		}

		*v = Voice{
			Active:     true,
			Frequency:  frequency,
			Amplitude:  amplitude,
			Phase:      0,
			Increment:  frequency / p.sampleRate,
			Instrument: p.instrument,
		}
		p.active++
		return i, true
	}

	return -1, false
}

// Release stops the lowest-indexed active voice whose frequency equals
// frequency exactly. It reports false when no voice matches.
func (p *Pool) Release(frequency float64) (slot int, ok bool) {
	for i := range p.voices {
		v := &p.voices[i]
		if v.Active && v.Frequency == frequency {
			v.Active = false
			p.active--
			return i, true
		}
	}

	return -1, false
}

// RenderFrame mixes every active voice into one stereo frame and advances
// their phases. Voices are duplicated to both channels. The sum is not
// clamped and may leave [-1,1] when voices overlap.
func (p *Pool) RenderFrame() (left, right float64) {
	if p.active == 0 {
		return 0, 0
	}

	for i := range p.voices {
		v := &p.voices[i]
		if !v.Active {
			continue
		}

		s := v.sample()
		left += s
		right += s
		v.advance()
	}

	return left, right
}

// Render fills dst with interleaved stereo frames and returns the number
// of frames written. A trailing odd value in dst is left untouched.
func (p *Pool) Render(dst []float64) int {
	frames := len(dst) / Channels
	for f := range frames {
		idx := f << 1 // f * 2
		dst[idx], dst[idx+1] = p.RenderFrame()
	}

	return frames
}

// Reset silences every voice and restores the default instrument.
func (p *Pool) Reset() {
	clear(p.voices)
	p.active = 0
	p.instrument = Piano
}
