package segment

import "github.com/tuannh982/segment-decoder/segment/commons"

type anchorKind int

const (
	anchorOne anchorKind = iota
	anchorFour
)

// overlapRule resolves a signal of an ambiguous length by how many
// segments it shares with one anchor.
type overlapRule struct {
	length  int
	anchor  anchorKind
	overlap int
	digit   commons.Digit
}

// signature is everything a rule can look at.
type signature struct {
	length int
	one    int
	four   int
}

func (r overlapRule) matches(sig signature) bool {
	if r.length != sig.length {
		return false
	}
	switch r.anchor {
	case anchorOne:
		return sig.one == r.overlap
	case anchorFour:
		return sig.four == r.overlap
	}
	return false
}

// overlapRules is evaluated in order; the first match wins.
var overlapRules = []overlapRule{
	// 2, 3, 5
	{length: 5, anchor: anchorOne, overlap: 2, digit: 3},
	{length: 5, anchor: anchorFour, overlap: 3, digit: 5},
	{length: 5, anchor: anchorFour, overlap: 2, digit: 2},
	// 0, 6, 9
	{length: 6, anchor: anchorFour, overlap: 4, digit: 9},
	{length: 6, anchor: anchorOne, overlap: 2, digit: 0},
	{length: 6, anchor: anchorOne, overlap: 1, digit: 6},
}

// Classify returns the digit a signal shows, given the entry's anchors.
func Classify(signal commons.SymbolSet, anchors Anchors) (commons.Digit, error) {
	sig := signature{
		length: signal.Len(),
		one:    signal.Overlap(anchors.One),
		four:   signal.Overlap(anchors.Four),
	}
	return classifySignature(signal, sig)
}

func classifySignature(signal commons.SymbolSet, sig signature) (commons.Digit, error) {
	if d, ok := commons.UniqueLengths[sig.length]; ok {
		return d, nil
	}
	if sig.length != 5 && sig.length != 6 {
		return 0, &SignalError{Signal: signal, Err: ErrInvalidSignalLength}
	}
	for _, r := range overlapRules {
		if r.matches(sig) {
			return r.digit, nil
		}
	}
	return 0, &SignalError{Signal: signal, Err: ErrAmbiguousSignal}
}
