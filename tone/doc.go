// SPDX-License-Identifier: BSD-3-Clause

// Package tone synthesizes fixed-length sine tone buffers.
//
// Synthesize is a pure function of frequency, duration and sample rate.
// The same arguments always produce the same buffer, which is what lets
// the code compiler cache per-character tones and rebuild them
// deterministically.
package tone
