// SPDX-License-Identifier: BSD-3-Clause

package telegraph

import (
	"fmt"
	"strings"
)

// wordSeparator is the run inserted between words in textual output.
const wordSeparator = "   "

// Text renders message as a dot/dash string. Letter codes within a word
// are concatenated with no separator and words are separated by a fixed
// three-space run. The message is uppercased and nothing else; repeated
// spaces each contribute their own separator run. In strict mode an
// unmapped character fails the whole call with ErrCharacterNotFound; in
// permissive mode it contributes nothing.
//
// This variant reads the alphabet table directly and never touches the
// compiled tone cache.
func (t *Telegraph) Text(message string) (string, error) {
	var out strings.Builder

	for _, c := range strings.ToUpper(message) {
		if c == ' ' {
			out.WriteString(wordSeparator)
			continue
		}

		code, ok := t.table.Code(c)
		if !ok {
			if t.strict {
				return "", fmt.Errorf("%w: %q", ErrCharacterNotFound, c)
			}
			continue
		}
		out.WriteString(code)
	}
	return out.String(), nil
}
