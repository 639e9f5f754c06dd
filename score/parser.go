// SPDX-License-Identifier: EPL-2.0

package score

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/polysynth/synth"
)

const commentPrefix = "#"

// ParseLine decodes one score line. Blank lines and comments yield a nil
// Event and a nil error. Keywords are case-insensitive and tokens beyond
// the ones a command needs are ignored.
func ParseLine(text string) (Event, error) {
	if i := strings.Index(text, commentPrefix); i >= 0 {
		text = text[:i]
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}

	switch strings.ToUpper(fields[0]) {
	case "NOTE":
		return parseNote(fields[1:])
	case "INSTRUMENT":
		if len(fields) < 2 {
			return nil, fmt.Errorf("INSTRUMENT: %w", ErrMissingArgument)
		}
		inst, err := synth.ParseInstrument(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownInstrument, fields[1])
		}
		return SetInstrument{Instrument: inst}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
}

func parseNote(args []string) (Event, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("NOTE: %w", ErrMissingArgument)
	}

	switch strings.ToUpper(args[0]) {
	case "ON":
		if len(args) < 3 {
			return nil, fmt.Errorf("NOTE ON: %w", ErrMissingArgument)
		}
		freq, err := parseNumber(args[1])
		if err != nil {
			return nil, err
		}
		amp, err := parseNumber(args[2])
		if err != nil {
			return nil, err
		}
		return NoteOn{Frequency: freq, Amplitude: amp}, nil

	case "OFF":
		if len(args) < 2 {
			return nil, fmt.Errorf("NOTE OFF: %w", ErrMissingArgument)
		}
		freq, err := parseNumber(args[1])
		if err != nil {
			return nil, err
		}
		return NoteOff{Frequency: freq}, nil
	}

	return nil, fmt.Errorf("%w NOTE %q", ErrUnknownCommand, args[0])
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return f, nil
}

// Decoder reads score events line by line.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// Line returns the number of the last line read, starting at 1.
func (d *Decoder) Line() int { return d.line }

// Next returns the event of the next non-blank, non-comment line. A line
// that cannot be decoded is reported as a *ParseError, after which Next
// can be called again. At the end of input Next returns io.EOF; any other
// error comes from the reader.
func (d *Decoder) Next() (Event, error) {
	for d.sc.Scan() {
		d.line++
		text := d.sc.Text()

		ev, err := ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: d.line, Text: strings.TrimSpace(text), Err: err}
		}
		if ev == nil {
			continue
		}
		return ev, nil
	}

	if err := d.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading score: %w", err)
	}
	return nil, io.EOF
}
