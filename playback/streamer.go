// SPDX-License-Identifier: BSD-3-Clause

package playback

// bufferStreamer streams a mono sample buffer to both speaker channels.
// It satisfies beep's Streamer contract without importing it, which
// keeps this file free of the audio build tags.
type bufferStreamer struct {
	samples []float32
	pos     int
}

func (s *bufferStreamer) Stream(out [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}

	for i := range out {
		if s.pos >= len(s.samples) {
			return i, true
		}
		v := float64(s.samples[s.pos])
		out[i][0] = v
		out[i][1] = v
		s.pos++
	}
	return len(out), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
