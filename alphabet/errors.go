// SPDX-License-Identifier: BSD-3-Clause

package alphabet

import "errors"

var (
	ErrUnknownAlphabet = errors.New("unknown alphabet")
)
