// SPDX-License-Identifier: EPL-2.0

package polysynth

import "errors"

var ErrInvalidConfig = errors.New("invalid config")
