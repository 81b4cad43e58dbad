// SPDX-License-Identifier: BSD-3-Clause

package telegraph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tyndyll/telegraph/alphabet"
	"github.com/tyndyll/telegraph/formats"
	"github.com/tyndyll/telegraph/formats/aiff"
	"github.com/tyndyll/telegraph/formats/wav"
	"github.com/tyndyll/telegraph/tone"
)

// Defaults for the timing parameters. 660Hz is a comfortable sidetone
// and 20 WPM a common operator speed.
const (
	DefaultFrequency  = 660
	DefaultWPM        = 20
	DefaultSampleRate = 44100
)

// Letter and word spacing in silence units, appended after each
// character and emitted for each space. Every element already carries
// one trailing silence unit from compilation, so the effective gaps are
// 3 units between letters and 5 units per space.
const (
	letterGapUnits = 2
	wordGapUnits   = 5
)

// Sink consumes the sample buffers emitted while encoding a message.
// Write is called once per symbol, in message order.
type Sink interface {
	Write(samples []float32) error
}

// Telegraph encodes text messages as Morse code tones. Each Telegraph
// owns its compiled tone cache; the cache is built lazily on first use
// and replaced wholesale by GenerateTones. A Telegraph is not safe for
// concurrent use.
type Telegraph struct {
	table     alphabet.Table
	frequency float64
	wpm       int
	rate      int
	strict    bool

	codes *toneSet // nil until first encode or GenerateTones
}

// toneSet is the compiled per-character tone cache for one (alphabet,
// frequency, wpm, rate) combination.
type toneSet struct {
	chars   map[rune][]float32
	silence []float32
	blank   []float32
}

// Option configures a Telegraph at construction.
type Option func(*Telegraph)

// WithFrequency sets the tone frequency in Hz.
func WithFrequency(hz float64) Option {
	return func(t *Telegraph) { t.frequency = hz }
}

// WithWPM sets the words-per-minute rate the unit length derives from.
func WithWPM(wpm int) Option {
	return func(t *Telegraph) { t.wpm = wpm }
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(rate int) Option {
	return func(t *Telegraph) { t.rate = rate }
}

// Strict makes encoding fail with ErrCharacterNotFound on characters
// that have no code, instead of substituting a blank symbol.
func Strict() Option {
	return func(t *Telegraph) { t.strict = true }
}

// New creates a Telegraph for the named alphabet. It fails with
// alphabet.ErrUnknownAlphabet if the name is not registered.
func New(alphabetName string, opts ...Option) (*Telegraph, error) {
	table, err := alphabet.Lookup(alphabetName)
	if err != nil {
		return nil, err
	}

	t := &Telegraph{
		table:     table,
		frequency: DefaultFrequency,
		wpm:       DefaultWPM,
		rate:      DefaultSampleRate,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// UnitLength returns the duration in seconds of one timing unit at the
// given words-per-minute rate, per the PARIS standard: a dot lasts one
// unit, a dash three.
func UnitLength(wpm int) float64 {
	return (1200.0 / float64(wpm)) / 1000
}

// GenerateTones rebuilds the compiled tone cache with new parameters,
// discarding any previous cache.
func (t *Telegraph) GenerateTones(frequency float64, wpm, rate int) {
	t.frequency = frequency
	t.wpm = wpm
	t.rate = rate
	t.codes = compile(t.table, frequency, wpm, rate)
}

// compile builds one sample buffer per character: each dot or dash tone
// is followed by one unit of silence, concatenated in code order. The
// blank buffer is the zero-length marker substituted for unknown
// characters in permissive mode.
func compile(table alphabet.Table, frequency float64, wpm, rate int) *toneSet {
	unit := UnitLength(wpm)

	set := &toneSet{
		chars:   make(map[rune][]float32, len(table)),
		silence: tone.Synthesize(0, unit, rate),
		blank:   tone.Synthesize(0, 0, rate),
	}

	dot := tone.Synthesize(frequency, unit, rate)
	dash := tone.Synthesize(frequency, 3*unit, rate)

	for char, code := range table {
		buf := make([]float32, 0, len(code)*(len(dash)+len(set.silence)))
		for _, symbol := range code {
			switch symbol {
			case '.':
				buf = append(buf, dot...)
			case '-':
				buf = append(buf, dash...)
			}
			buf = append(buf, set.silence...)
		}
		set.chars[char] = buf
	}
	return set
}

func (t *Telegraph) compiled() *toneSet {
	if t.codes == nil {
		t.codes = compile(t.table, t.frequency, t.wpm, t.rate)
	}
	return t.codes
}

// Encode streams message to sink as tone buffers, one symbol per Write.
// The message is uppercased; no other normalization is applied. A space
// emits five silence units and every other character is followed by two.
// In strict mode an unmapped character aborts the call with
// ErrCharacterNotFound before anything is emitted for it; in permissive
// mode (the default) the zero-length blank buffer is substituted.
// Errors from the sink propagate unmodified.
func (t *Telegraph) Encode(message string, sink Sink) error {
	set := t.compiled()

	for _, c := range strings.ToUpper(message) {
		if c == ' ' {
			for i := 0; i < wordGapUnits; i++ {
				if err := sink.Write(set.silence); err != nil {
					return err
				}
			}
			continue
		}

		buf, ok := set.chars[c]
		if !ok {
			if t.strict {
				return fmt.Errorf("%w: %q", ErrCharacterNotFound, c)
			}
			buf = set.blank
		}

		if err := sink.Write(buf); err != nil {
			return err
		}
		for i := 0; i < letterGapUnits; i++ {
			if err := sink.Write(set.silence); err != nil {
				return err
			}
		}
	}
	return nil
}

// Code returns the dot/dash code string for a single character,
// case-folded. In permissive mode an unmapped character yields the
// empty string; in strict mode it fails with ErrCharacterNotFound.
func (t *Telegraph) Code(r rune) (string, error) {
	code, ok := t.table.Code(unicode.ToUpper(r))
	if !ok {
		if t.strict {
			return "", fmt.Errorf("%w: %q", ErrCharacterNotFound, r)
		}
		return "", nil
	}
	return code, nil
}

// defaultRegistry holds the writable audio formats, wired once at
// startup.
var defaultRegistry = func() *formats.Registry {
	r := formats.NewRegistry()
	r.Register("wav", wav.Opener{})
	r.Register("aiff", aiff.Opener{})
	return r
}()

// Registry returns the process-wide registry of writable audio formats.
func Registry() *formats.Registry {
	return defaultRegistry
}

// WriteFile encodes message as Morse code tones into an audio file,
// using the international alphabet and any options given. It fails with
// formats.ErrInvalidFormatEncoding before creating the file if the
// (format, encoding) pair is unsupported.
func WriteFile(filename, format, encoding, message string, opts ...Option) error {
	t, err := New(alphabet.International, opts...)
	if err != nil {
		return err
	}

	w, err := Registry().OpenFile(filename, format, encoding, 1, t.rate)
	if err != nil {
		return err
	}

	if err := t.Encode(message, w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
