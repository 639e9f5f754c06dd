// SPDX-License-Identifier: EPL-2.0

package score

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/ik5/polysynth/audio"
	"github.com/ik5/polysynth/synth"
)

// DefaultBlockFrames is the number of frames rendered after each score line.
const DefaultBlockFrames = 1024

// Stats summarizes what a Player did with its score.
type Stats struct {
	Lines             int     // score steps, blank and comment lines excluded
	NoteOns           int     // note-ons that started a voice
	NoteOffs          int     // note-offs that stopped a voice
	InstrumentChanges int     // INSTRUMENT commands applied
	Dropped           int     // note-ons that found every voice busy
	Unmatched         int     // note-offs that found no sounding voice
	Ignored           int     // lines that could not be decoded
	Frames            int     // frames rendered
	Peak              float64 // largest absolute sample value rendered
}

// Clipped reports whether any rendered sample left [-1,1] and will be
// saturated by a fixed-point writer.
func (s Stats) Clipped() bool { return s.Peak > 1 }

// Option configures a Player.
type Option func(*Player)

// WithBlockFrames sets how many frames each score line renders.
// Non-positive values keep the default.
func WithBlockFrames(n int) Option {
	return func(p *Player) {
		if n > 0 {
			p.blockFrames = n
		}
	}
}

// WithLogger sets the logger used for skipped lines and dropped notes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// Player drives a voice pool from a score. Every score line is applied to
// the pool and followed by one block of rendered frames, which the Player
// serves as an audio.Source.
type Player struct {
	dec         *Decoder
	pool        *synth.Pool
	log         *slog.Logger
	blockFrames int

	block    []float64
	pos, end int
	err      error
	stats    Stats
}

// NewPlayer reads score lines from r and renders them with pool. The pool
// is reset first, so every score starts silent on the piano, and is owned by
// the Player until the score ends.
func NewPlayer(r io.Reader, pool *synth.Pool, opts ...Option) *Player {
	pool.Reset()

	p := &Player{
		dec:         NewDecoder(r),
		pool:        pool,
		log:         slog.New(slog.DiscardHandler),
		blockFrames: DefaultBlockFrames,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.block = make([]float64, p.blockFrames*synth.Channels)

	return p
}

func (p *Player) SampleRate() int { return p.pool.SampleRate() }
func (p *Player) Channels() int   { return synth.Channels }
func (p *Player) BufSize() int    { return len(p.block) }
func (p *Player) Stats() Stats    { return p.stats }

// Close does not close the score reader; it belongs to the caller.
func (p *Player) Close() error { return nil }

// ReadSamples fills dst with interleaved stereo samples, advancing through
// the score as needed. It returns io.EOF once the last block is drained.
func (p *Player) ReadSamples(dst []float64) (int, error) {
	if len(dst)%synth.Channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n := 0
	for n < len(dst) {
		if p.pos == p.end {
			if err := p.step(); err != nil {
				return n, err
			}
		}

		c := copy(dst[n:], p.block[p.pos:p.end])
		n += c
		p.pos += c
	}

	return n, nil
}

// step applies the next score line and renders one block.
func (p *Player) step() error {
	if p.err != nil {
		return p.err
	}

	ev, err := p.dec.Next()
	var perr *ParseError
	switch {
	case err == nil:
		p.apply(ev)
	case errors.As(err, &perr):
		p.stats.Ignored++
		p.log.Debug("skipping score line", "line", perr.Line, "text", perr.Text, "err", perr.Err)
	default:
		p.err = err
		return err
	}

	p.stats.Lines++
	p.render()
	return nil
}

func (p *Player) apply(ev Event) {
	ok := ev.Apply(p.pool)

	switch e := ev.(type) {
	case NoteOn:
		if ok {
			p.stats.NoteOns++
			return
		}
		p.stats.Dropped++
		p.log.Debug("voice pool full, note dropped",
			"line", p.dec.Line(),
			"frequency", e.Frequency,
			"voices", p.pool.Cap(),
		)
	case NoteOff:
		if ok {
			p.stats.NoteOffs++
			return
		}
		p.stats.Unmatched++
		p.log.Debug("note off without sounding voice", "line", p.dec.Line(), "frequency", e.Frequency)
	case SetInstrument:
		p.stats.InstrumentChanges++
	}
}

func (p *Player) render() {
	frames := p.pool.Render(p.block)
	for _, v := range p.block {
		p.stats.Peak = max(p.stats.Peak, math.Abs(v))
	}

	p.stats.Frames += frames
	p.pos, p.end = 0, len(p.block)
}
