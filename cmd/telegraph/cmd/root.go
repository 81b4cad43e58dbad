// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyndyll/telegraph"
	"github.com/tyndyll/telegraph/alphabet"
	"github.com/tyndyll/telegraph/playback"
)

var flags struct {
	input        string
	output       string
	format       string
	encoding     string
	listFormats  bool
	encodingList string
	verbose      bool
	printOnly    bool
	alphabetName string
	frequency    float64
	wpm          int
	rate         int
	strict       bool
}

var errInvalidFormat = errors.New("invalid file format")

var rootCmd = &cobra.Command{
	Use:   "telegraph [message...]",
	Short: "Convert text to Morse code audio",
	Long: `Convert text to Morse code, played through the speakers, written to an
audio file, or printed as dots and dashes.

The message is taken from the positional arguments, or line by line from
a file with --input. Without --output the message plays live; with it
the tones are written to an audio file in the requested format and
encoding.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command. Errors have already been reported on
// stderr when it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errInvalidFormat) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.input, "input", "i", "", "read the message from this file, one line at a time")
	f.StringVarP(&flags.output, "output", "o", "", "write audio to this file instead of playing it")
	f.StringVarP(&flags.format, "format", "f", "wav", "output file format")
	f.StringVarP(&flags.encoding, "encoding", "e", "pcm16", "output file encoding")
	f.BoolVar(&flags.listFormats, "list-formats", false, "list the supported output formats and exit")
	f.StringVar(&flags.encodingList, "list-encodings", "", "list the supported encodings for a format and exit")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "echo each input line as it is encoded")
	f.BoolVarP(&flags.printOnly, "print", "p", false, "print the dot/dash rendering instead of producing audio")
	f.StringVar(&flags.alphabetName, "alphabet", alphabet.International, "morse alphabet to use")
	f.Float64Var(&flags.frequency, "frequency", telegraph.DefaultFrequency, "tone frequency in Hz")
	f.IntVar(&flags.wpm, "wpm", telegraph.DefaultWPM, "words per minute")
	f.IntVar(&flags.rate, "rate", telegraph.DefaultSampleRate, "sample rate in Hz")
	f.BoolVar(&flags.strict, "strict", false, "fail on characters with no morse encoding")
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flags.listFormats {
		for _, format := range telegraph.Registry().Formats() {
			fmt.Fprintln(out, format)
		}
		return nil
	}

	if flags.encodingList != "" {
		encodings, err := telegraph.Registry().Encodings(flags.encodingList)
		if err != nil {
			fmt.Fprintln(out, "Invalid file format")
			return errInvalidFormat
		}
		fmt.Fprintf(out, "File encodings for %s\n", flags.encodingList)
		for _, encoding := range encodings {
			fmt.Fprintln(out, encoding)
		}
		return nil
	}

	messages, err := collectMessages(args)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return cmd.Usage()
	}

	opts := []telegraph.Option{
		telegraph.WithFrequency(flags.frequency),
		telegraph.WithWPM(flags.wpm),
		telegraph.WithSampleRate(flags.rate),
	}
	if flags.strict {
		opts = append(opts, telegraph.Strict())
	}

	t, err := telegraph.New(flags.alphabetName, opts...)
	if err != nil {
		return err
	}

	if flags.printOnly {
		for _, message := range messages {
			echo(out, message)
			text, err := t.Text(message)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
		}
		return nil
	}

	sink, closeSink, err := openSink()
	if err != nil {
		return err
	}

	for _, message := range messages {
		echo(out, message)
		if err := t.Encode(message, sink); err != nil {
			closeSink()
			return err
		}
	}
	return closeSink()
}

// collectMessages gathers the messages to encode: the lines of the
// input file when --input is set, otherwise the positional arguments
// joined into a single message.
func collectMessages(args []string) ([]string, error) {
	if flags.input == "" {
		if len(args) == 0 {
			return nil, nil
		}
		return []string{strings.Join(args, " ")}, nil
	}

	f, err := os.Open(flags.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var messages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		messages = append(messages, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func openSink() (telegraph.Sink, func() error, error) {
	if flags.output != "" {
		w, err := telegraph.Registry().OpenFile(flags.output, flags.format, flags.encoding, 1, flags.rate)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil
	}

	spk, err := playback.New(flags.rate)
	if err != nil {
		return nil, nil, err
	}
	return spk, spk.Close, nil
}

func echo(out io.Writer, message string) {
	if flags.verbose {
		fmt.Fprintln(out, message)
	}
}
