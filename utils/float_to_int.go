// SPDX-License-Identifier: BSD-3-Clause

package utils

// FloatToInt converts a float32 sample in [-1, 1] to a signed integer
// sample at the given bit depth. Values outside [-1, 1] are clamped.
//
// The scale is the maximum positive value for the depth (e.g. 32767 for
// 16-bit), so a full-scale input never overflows the target range.
func FloatToInt(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := float64(int64(1)<<(bitDepth-1) - 1)
	return int(float64(x) * scale)
}
