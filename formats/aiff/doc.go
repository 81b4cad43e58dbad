// SPDX-License-Identifier: BSD-3-Clause

// Package aiff writes PCM AIFF files.
//
// This package uses github.com/go-audio/aiff for the container and
// supports 16-bit PCM ("pcm16").
package aiff
