// Package input reads display entries from their text form:
//
//	<10 patterns> | <4 patterns>
//
// one entry per line, patterns over the letters a..g.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tuannh982/segment-decoder/segment/commons"
)

const (
	minTokenLength = 2
	maxTokenLength = 7
)

var (
	ErrMissingSeparator   = errors.New("missing '|' separator")
	ErrInvalidTokenLength = errors.New("pattern must light 2 to 7 segments")
	ErrRepeatedSegment    = errors.New("pattern repeats a segment")
)

// ParseError reports the line that could not be read.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads all entries from r. Blank lines are skipped.
func Parse(r io.Reader) ([]commons.Entry, error) {
	entries := make([]commons.Entry, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		entry, err := parseEntry(lineNo, text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseLine reads a single entry.
func ParseLine(line string) (commons.Entry, error) {
	text := strings.TrimSpace(line)
	entry, err := parseEntry(1, text)
	if err != nil {
		return entry, &ParseError{Line: 1, Text: text, Err: err}
	}
	return entry, nil
}

func parseEntry(lineNo int, text string) (commons.Entry, error) {
	left, right, found := strings.Cut(text, "|")
	if !found {
		return commons.Entry{}, ErrMissingSeparator
	}
	inputs, err := parseSignals(left)
	if err != nil {
		return commons.Entry{}, err
	}
	outputs, err := parseSignals(right)
	if err != nil {
		return commons.Entry{}, err
	}
	return commons.NewEntry(lineNo, inputs, outputs)
}

func parseSignals(s string) ([]commons.SymbolSet, error) {
	fields := strings.Fields(s)
	signals := make([]commons.SymbolSet, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLength || len(f) > maxTokenLength {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTokenLength, f)
		}
		for i := 0; i < len(f); i++ {
			if c := f[i] | 0x20; c < 'a' || c > 'g' {
				return nil, fmt.Errorf("%w: %q in %q", commons.ErrInvalidSegment, f[i], f)
			}
		}
		signal, err := commons.ParseSymbolSet(f)
		if err != nil {
			return nil, err
		}
		if signal.Len() != len(f) {
			return nil, fmt.Errorf("%w: %q", ErrRepeatedSegment, f)
		}
		signals = append(signals, signal)
	}
	return signals, nil
}
