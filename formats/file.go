// SPDX-License-Identifier: BSD-3-Clause

package formats

import (
	"fmt"
	"os"
)

// fileWriter ties a format Writer to the file backing it so that Close
// finalizes the headers before releasing the file handle.
type fileWriter struct {
	Writer
	f *os.File
}

func (w *fileWriter) Close() error {
	if err := w.Writer.Close(); err != nil {
		w.f.Close()
		return err
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// OpenFile creates path and returns a Writer producing the requested
// format and encoding. The (format, encoding) pair is validated against
// the registry first; an unsupported pair fails with
// ErrInvalidFormatEncoding before any file is created.
func (r *Registry) OpenFile(path, format, encoding string, channels, sampleRate int) (Writer, error) {
	o, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: format %q", ErrInvalidFormatEncoding, format)
	}
	if !r.Supports(format, encoding) {
		return nil, fmt.Errorf("%w: encoding %q for format %q", ErrInvalidFormatEncoding, encoding, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := o.Open(f, encoding, channels, sampleRate)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	return &fileWriter{Writer: w, f: f}, nil
}
