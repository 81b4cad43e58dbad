// SPDX-License-Identifier: BSD-3-Clause

package formats

import "errors"

var (
	ErrInvalidFormatEncoding = errors.New("invalid format or encoding")
)
