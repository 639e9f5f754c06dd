// SPDX-License-Identifier: EPL-2.0

package score

import (
	"errors"
	"fmt"

	"github.com/ik5/polysynth/synth"
)

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingArgument   = errors.New("missing argument")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrUnknownInstrument = synth.ErrUnknownInstrument
)

// ParseError describes a score line that could not be decoded. Players
// skip such lines; it is never fatal.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("score line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
