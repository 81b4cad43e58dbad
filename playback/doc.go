// SPDX-License-Identifier: BSD-3-Clause

// Package playback plays sample buffers through the system speaker.
//
// The Sink satisfies the telegraph.Sink interface and blocks on every
// Write until the buffer finishes playing, matching the one-symbol-at-
// a-time emission of the encoder. Playback uses github.com/gopxl/beep
// where a speaker backend is available; on Linux without CGO a
// terminal-bell fallback keeps the timing but not the tone.
package playback
