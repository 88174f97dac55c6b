package segment

import (
	"errors"
	"fmt"

	"github.com/tuannh982/segment-decoder/segment/commons"
)

var (
	ErrMissingAnchor       = errors.New("missing anchor")
	ErrDuplicateAnchor     = errors.New("duplicate anchor")
	ErrAmbiguousSignal     = errors.New("ambiguous signal")
	ErrInvalidSignalLength = errors.New("invalid signal length")
)

// SignalError ties a classification failure to the signal that caused it.
type SignalError struct {
	Signal commons.SymbolSet
	Err    error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("signal %q (length %d): %v", e.Signal.String(), e.Signal.Len(), e.Err)
}

func (e *SignalError) Unwrap() error {
	return e.Err
}

// EntryError ties a decoding failure to the entry it happened in. Index is
// the position in the decoded batch, Line the source line when known.
type EntryError struct {
	Index int
	Line  int
	Err   error
}

func (e *EntryError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("entry %d (line %d): %v", e.Index, e.Line, e.Err)
	}
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
