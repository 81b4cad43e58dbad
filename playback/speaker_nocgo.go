// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !cgo

package playback

import (
	"fmt"
	"time"
)

// Sink is the fallback playback path when no speaker backend is
// available: tones become terminal bells and every buffer still takes
// its real duration, so message timing is preserved.
type Sink struct {
	rate int
}

func New(sampleRate int) (*Sink, error) {
	fmt.Println("(Audio playback requires CGO on Linux. Using terminal bell...)")
	return &Sink{rate: sampleRate}, nil
}

func (s *Sink) Write(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	for _, v := range samples {
		if v != 0 {
			fmt.Print("\a")
			break
		}
	}
	time.Sleep(time.Duration(float64(len(samples)) / float64(s.rate) * float64(time.Second)))

	return nil
}

func (s *Sink) Close() error {
	return nil
}
