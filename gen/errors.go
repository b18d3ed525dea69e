// SPDX-License-Identifier: MIT

package gen

import "errors"

// ErrInvalidConfig reports an instantiation list the generator cannot expand.
var ErrInvalidConfig = errors.New("gen: invalid config")
