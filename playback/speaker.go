// SPDX-License-Identifier: BSD-3-Clause

//go:build (linux && cgo) || windows || darwin

package playback

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	initOnce sync.Once
	initErr  error
)

// Sink plays sample buffers through the system speaker. Each Write
// blocks until the buffer has finished playing.
type Sink struct {
	rate int
}

// New initializes the speaker at the given sample rate. The speaker is
// shared process-wide and initialized once; the sample rate of the
// first call wins.
func New(sampleRate int) (*Sink, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(beep.SampleRate(sampleRate), sampleRate/10)
	})
	if initErr != nil {
		return nil, fmt.Errorf("%w", initErr)
	}
	return &Sink{rate: sampleRate}, nil
}

// Write plays samples and returns once playback completes.
func (s *Sink) Write(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(&bufferStreamer{samples: samples}, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}

// Close releases nothing; the speaker stays initialized for the
// lifetime of the process.
func (s *Sink) Close() error {
	return nil
}
