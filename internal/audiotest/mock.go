// SPDX-License-Identifier: BSD-3-Clause

// Package audiotest provides mock sinks for encoder tests.
package audiotest

// MockSink records every buffer written to it. It implements the
// telegraph.Sink interface (without importing it to avoid cycles).
type MockSink struct {
	// Buffers holds each written buffer, in order. Buffers are copied
	// so later cache rebuilds cannot mutate recorded data.
	Buffers [][]float32

	// Err, when set, is returned by Write after FailAfter successful
	// writes.
	Err       error
	FailAfter int

	writes int
}

func (s *MockSink) Write(samples []float32) error {
	if s.Err != nil && s.writes >= s.FailAfter {
		return s.Err
	}
	s.writes++

	buf := make([]float32, len(samples))
	copy(buf, samples)
	s.Buffers = append(s.Buffers, buf)
	return nil
}

// Writes reports the number of successful Write calls.
func (s *MockSink) Writes() int {
	return s.writes
}

// Samples concatenates all recorded buffers.
func (s *MockSink) Samples() []float32 {
	var all []float32
	for _, buf := range s.Buffers {
		all = append(all, buf...)
	}
	return all
}
