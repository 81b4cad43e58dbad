// SPDX-License-Identifier: BSD-3-Clause

// Package formats provides writable audio file formats behind a registry.
//
// Each format subpackage contributes an Opener that turns an
// io.WriteSeeker into a Writer for one of its encodings. The Registry
// answers the capability queries a caller needs before committing to a
// file:
//
//	registry := formats.NewRegistry()
//	registry.Register("wav", wav.Opener{})
//
//	registry.Formats()          // ["wav"]
//	registry.Encodings("wav")   // ["pcm16", "pcm24", "pcm32"]
//
// OpenFile validates the (format, encoding) pair against the registry
// before creating the file, so requesting an unsupported combination
// never leaves an empty file behind:
//
//	w, err := registry.OpenFile("out.wav", "wav", "pcm16", 1, 44100)
//	if err != nil {
//	    // errors.Is(err, formats.ErrInvalidFormatEncoding) for bad pairs
//	}
//	defer w.Close()
//	w.Write(samples)
//
// Writers accept float32 samples in [-1, 1] and convert them to the
// integer PCM depth of the chosen encoding.
package formats
