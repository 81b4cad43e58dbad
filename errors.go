// SPDX-License-Identifier: BSD-3-Clause

package telegraph

import "errors"

var (
	ErrCharacterNotFound = errors.New("no morse encoding for character")
)
