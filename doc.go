// SPDX-License-Identifier: BSD-3-Clause

// Package telegraph converts text into Morse code, rendered as a
// dot/dash string, synthesized tones played through the speakers, or an
// audio file.
//
// # Quick Start
//
// The one-call surface writes a message straight to an audio file:
//
//	err := telegraph.WriteFile("sos.wav", "wav", "pcm16", "SOS SOS")
//
// For more control, create a Telegraph and pick a sink:
//
//	t, err := telegraph.New(alphabet.International,
//	    telegraph.WithWPM(25),
//	    telegraph.WithFrequency(700),
//	)
//
//	// Textual rendering
//	text, _ := t.Text("SOS")   // "...---..."
//
//	// Audio file
//	w, _ := telegraph.Registry().OpenFile("sos.wav", "wav", "pcm16", 1, 44100)
//	t.Encode("SOS", w)
//	w.Close()
//
//	// Live playback (blocking, see the playback package)
//	spk, _ := playback.New(44100)
//	t.Encode("SOS", spk)
//
// # Timing
//
// Tone lengths derive from a words-per-minute rate using the PARIS
// standard: one unit is (1200/wpm) milliseconds, a dot lasts one unit
// and a dash three. Each element carries one trailing unit of silence;
// two more units follow every letter and five units are emitted per
// space.
//
// # Unknown Characters
//
// By default characters without a code are replaced by a silent
// zero-length marker. Construct with telegraph.Strict() to fail with
// ErrCharacterNotFound instead.
//
// # Concurrency
//
// A Telegraph owns its compiled tone cache exclusively and runs every
// operation synchronously to completion. Instances are not safe for
// concurrent use; encode on a dedicated goroutine if the caller needs
// to stay responsive during playback.
package telegraph
