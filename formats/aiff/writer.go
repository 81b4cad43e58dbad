// SPDX-License-Identifier: BSD-3-Clause

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/tyndyll/telegraph/formats"
	"github.com/tyndyll/telegraph/utils"
)

// Opener creates PCM AIFF writers via github.com/go-audio/aiff.
type Opener struct{}

func (Opener) Encodings() []string {
	return []string{"pcm16"}
}

func (Opener) Open(w io.WriteSeeker, encoding string, channels, sampleRate int) (formats.Writer, error) {
	if encoding != "pcm16" {
		return nil, fmt.Errorf("%w: encoding %q for format \"aiff\"", formats.ErrInvalidFormatEncoding, encoding)
	}

	return &writer{
		enc:      goaiff.NewEncoder(w, sampleRate, 16, channels),
		channels: channels,
		rate:     sampleRate,
	}, nil
}

type writer struct {
	enc      *goaiff.Encoder
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
		wr.data[i] = utils.FloatToInt(s, 16)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: wr.channels,
			SampleRate:  wr.rate,
		},
		Data:           wr.data,
		SourceBitDepth: 16,
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
