// SPDX-License-Identifier: BSD-3-Clause

// Package alphabet provides named Morse code alphabets.
//
// An alphabet is an immutable mapping from uppercase characters to their
// dot/dash code strings, looked up by name from a fixed registry:
//
//	table, err := alphabet.Lookup(alphabet.International)
//	if err != nil {
//	    // unknown alphabet name
//	}
//	code, ok := table.Code('S') // "...", true
//
// The only alphabet currently registered is "international", covering the
// digits 0-9 and letters A-Z. Tables are shared between callers and must
// be treated as read-only.
package alphabet
