// SPDX-License-Identifier: BSD-3-Clause

package tone

import "math"

// Synthesize generates a sine tone as float32 samples in [-1, 1].
//
// The buffer holds round(duration*rate) samples whose phases are spaced
// evenly, endpoint included, across [0, duration*frequency*2*pi]. A zero
// frequency yields a buffer of silence and a zero duration yields an
// empty buffer; both are used by the code compiler as the silence unit
// and the blank marker.
func Synthesize(frequency, duration float64, rate int) []float32 {
	n := int(math.Round(duration * float64(rate)))
	if n < 0 {
		n = 0
	}
	buf := make([]float32, n)
	if n < 2 || frequency == 0 {
		return buf
	}

	step := duration * frequency * 2 * math.Pi / float64(n-1)
	for i := range buf {
		buf[i] = float32(math.Sin(float64(i) * step))
	}
	return buf
}
