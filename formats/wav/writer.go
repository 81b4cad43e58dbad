// SPDX-License-Identifier: BSD-3-Clause

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/tyndyll/telegraph/formats"
	"github.com/tyndyll/telegraph/utils"
)

// pcmFormat is the WAV audio format tag for uncompressed PCM.
const pcmFormat = 1

var bitDepths = map[string]int{
	"pcm16": 16,
	"pcm24": 24,
	"pcm32": 32,
}

// Opener creates PCM WAV writers via github.com/go-audio/wav.
type Opener struct{}

func (Opener) Encodings() []string {
	return []string{"pcm16", "pcm24", "pcm32"}
}

func (Opener) Open(w io.WriteSeeker, encoding string, channels, sampleRate int) (formats.Writer, error) {
	depth, ok := bitDepths[encoding]
	if !ok {
		return nil, fmt.Errorf("%w: encoding %q for format \"wav\"", formats.ErrInvalidFormatEncoding, encoding)
	}

	return &writer{
		enc:      gowav.NewEncoder(w, sampleRate, depth, channels, pcmFormat),
		depth:    depth,
		channels: channels,
		rate:     sampleRate,
	}, nil
}

type writer struct {
	enc      *gowav.Encoder
	depth    int
	channels int
	rate     int
	data     []int
}

func (wr *writer) Write(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(wr.data) < len(samples) {
		wr.data = make([]int, len(samples))
	}
	wr.data = wr.data[:len(samples)]

	for i, s := range samples {
		wr.data[i] = utils.FloatToInt(s, wr.depth)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: wr.channels,
			SampleRate:  wr.rate,
		},
		Data:           wr.data,
		SourceBitDepth: wr.depth,
	}

	if err := wr.enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (wr *writer) Close() error {
	if err := wr.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
