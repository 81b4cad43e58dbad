// SPDX-License-Identifier: BSD-3-Clause

package alphabet

import (
	"fmt"
	"sort"
)

// International is the name of the built-in ITU Morse alphabet.
const International = "international"

// Table maps an uppercase character to its dot/dash code string.
// Tables returned by Lookup are shared and must not be modified.
type Table map[rune]string

// Code returns the dot/dash code string for r, if present.
func (t Table) Code(r rune) (string, bool) {
	code, ok := t[r]
	return code, ok
}

var international = Table{
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",
}

// registry of named alphabets, fixed at startup.
var registry = map[string]Table{
	International: international,
}

// Lookup returns the alphabet table registered under name.
// It fails with ErrUnknownAlphabet if no such alphabet exists.
func Lookup(name string) (Table, error) {
	table, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}
	return table, nil
}

// Names lists the registered alphabet names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
