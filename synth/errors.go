// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidCapacity   = errors.New("voice capacity must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnknownInstrument = errors.New("unknown instrument")
)
