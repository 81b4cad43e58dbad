// SPDX-License-Identifier: BSD-3-Clause

package formats

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"
)

// Writer consumes sample buffers and writes them to an audio file.
// Close finalizes the file headers; a Writer must not be used after
// Close returns.
type Writer interface {
	// Write appends interleaved float32 samples in [-1,1] to the file.
	Write(samples []float32) error
	// Close flushes buffered data and finalizes the file.
	Close() error
}

// Opener creates Writers for one audio file format.
type Opener interface {
	// Encodings lists the encodings the format supports, sorted.
	Encodings() []string
	// Open wraps w in a Writer producing the given encoding.
	Open(w io.WriteSeeker, encoding string, channels, sampleRate int) (Writer, error)
}

// Registry of file format openers by format key (e.g. "wav", "aiff").
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[format] = o
}

func (r *Registry) Get(format string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[format]
	return o, ok
}

// Formats lists the registered format names in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.openers))
	for name := range r.openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encodings lists the encodings available for format. It fails with
// ErrInvalidFormatEncoding when the format is not registered.
func (r *Registry) Encodings(format string) ([]string, error) {
	o, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: format %q", ErrInvalidFormatEncoding, format)
	}
	return o.Encodings(), nil
}

// Supports reports whether the (format, encoding) pair is available.
func (r *Registry) Supports(format, encoding string) bool {
	o, ok := r.Get(format)
	if !ok {
		return false
	}
	return slices.Contains(o.Encodings(), encoding)
}
