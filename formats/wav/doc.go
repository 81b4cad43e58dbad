// SPDX-License-Identifier: BSD-3-Clause

// Package wav writes PCM WAV files.
//
// It uses the github.com/go-audio library for the RIFF/WAVE container and
// supports 16, 24 and 32-bit PCM encodings ("pcm16", "pcm24", "pcm32").
package wav
