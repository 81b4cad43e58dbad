// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tyndyll/telegraph"
	"github.com/tyndyll/telegraph/alphabet"
)

// execute runs the root command with args and captures stdout. The
// shared flag struct means these tests cannot run in parallel; flags
// are reset to their defaults before every run.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flags.input = ""
	flags.output = ""
	flags.format = "wav"
	flags.encoding = "pcm16"
	flags.listFormats = false
	flags.encodingList = ""
	flags.verbose = false
	flags.printOnly = false
	flags.alphabetName = alphabet.International
	flags.frequency = telegraph.DefaultFrequency
	flags.wpm = telegraph.DefaultWPM
	flags.rate = telegraph.DefaultSampleRate
	flags.strict = false

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_ListFormats(t *testing.T) {
	out, err := execute(t, "--list-formats")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "aiff\nwav\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRoot_ListEncodings(t *testing.T) {
	out, err := execute(t, "--list-encodings", "wav")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.HasPrefix(out, "File encodings for wav\n") {
		t.Errorf("output = %q, want encoding listing header", out)
	}
	if !strings.Contains(out, "pcm16") {
		t.Errorf("output = %q, want it to contain pcm16", out)
	}
}

func TestRoot_ListEncodingsInvalidFormat(t *testing.T) {
	out, err := execute(t, "--list-encodings", "ogg")
	if !errors.Is(err, errInvalidFormat) {
		t.Fatalf("Execute() error = %v, want errInvalidFormat", err)
	}

	if out != "Invalid file format\n" {
		t.Errorf("output = %q, want %q", out, "Invalid file format\n")
	}
}

func TestRoot_PrintMode(t *testing.T) {
	out, err := execute(t, "-p", "SOS")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out != "...---...\n" {
		t.Errorf("output = %q, want %q", out, "...---...\n")
	}
}

func TestRoot_WriteOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	_, err := execute(t, "-o", path, "--wpm", "40", "SOS")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() <= 44 {
		t.Errorf("output file size = %d, want more than a bare WAV header", info.Size())
	}
}

func TestRoot_InvalidOutputPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ogg")
	_, err := execute(t, "-o", path, "-f", "ogg", "-e", "vorbis", "SOS")
	if err == nil {
		t.Fatal("Execute() error = nil, want invalid format/encoding error")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("invalid pair still created a file")
	}
}

func TestRoot_InputFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(input, []byte("SOS\nSMS\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := execute(t, "-p", "-v", "-i", input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "SOS\n...---...\nSMS\n...--...\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
