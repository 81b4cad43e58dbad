// SPDX-License-Identifier: BSD-3-Clause

package formats

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

// mockOpener is a test opener implementation
type mockOpener struct {
	encodings []string
}

func (o *mockOpener) Encodings() []string { return o.encodings }

func (o *mockOpener) Open(w io.WriteSeeker, encoding string, channels, sampleRate int) (Writer, error) {
	return &discardWriter{}, nil
}

type discardWriter struct{}

func (*discardWriter) Write([]float32) error { return nil }
func (*discardWriter) Close() error          { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	opener := &mockOpener{encodings: []string{"pcm16"}}

	registry.Register("wav", opener)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered opener")
	}

	if got != opener {
		t.Error("Registry.Get() returned different opener instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("ogg")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockOpener{encodings: []string{"pcm16"}}
	second := &mockOpener{encodings: []string{"pcm24"}}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if got != second {
		t.Error("Registry.Get() did not return the overwritten opener")
	}
}

func TestRegistry_FormatsSorted(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockOpener{})
	registry.Register("aiff", &mockOpener{})
	registry.Register("flac", &mockOpener{})

	got := registry.Formats()
	want := []string{"aiff", "flac", "wav"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Encodings(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockOpener{encodings: []string{"pcm16", "pcm24"}})

	got, err := registry.Encodings("wav")
	if err != nil {
		t.Fatalf("Encodings(\"wav\") error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"pcm16", "pcm24"}) {
		t.Errorf("Encodings(\"wav\") = %v", got)
	}

	_, err = registry.Encodings("ogg")
	if !errors.Is(err, ErrInvalidFormatEncoding) {
		t.Errorf("Encodings(\"ogg\") error = %v, want ErrInvalidFormatEncoding", err)
	}
}

func TestRegistry_Supports(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockOpener{encodings: []string{"pcm16"}})

	tests := []struct {
		format   string
		encoding string
		want     bool
	}{
		{"wav", "pcm16", true},
		{"wav", "vorbis", false},
		{"ogg", "vorbis", false},
	}

	for _, tt := range tests {
		if got := registry.Supports(tt.format, tt.encoding); got != tt.want {
			t.Errorf("Supports(%q, %q) = %v, want %v", tt.format, tt.encoding, got, tt.want)
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	opener := &mockOpener{}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			registry.Register("wav", opener)
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		go func() {
			_, _ = registry.Get("wav")
			done <- true
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	got, ok := registry.Get("wav")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != opener {
		t.Error("Registry returned wrong opener after concurrent operations")
	}
}

// BenchmarkRegistry_Get benchmarks retrieving openers
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockOpener{})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = registry.Get("wav")
	}
}
