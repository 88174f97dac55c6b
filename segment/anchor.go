package segment

import (
	"errors"
	"fmt"

	"github.com/tuannh982/segment-decoder/segment/commons"
	"github.com/tuannh982/segment-decoder/utils/collections"
)

// Anchors are the two patterns whose digit follows from length alone and
// whose overlaps separate the remaining digits.
type Anchors struct {
	One  commons.SymbolSet
	Four commons.SymbolSet
}

// FindAnchors picks the patterns of digits 1 and 4 out of an entry's
// input signals.
func FindAnchors(inputs []commons.SymbolSet) (Anchors, error) {
	one, err := uniqueOfLength(inputs, 2, 1)
	if err != nil {
		return Anchors{}, err
	}
	four, err := uniqueOfLength(inputs, 4, 4)
	if err != nil {
		return Anchors{}, err
	}
	return Anchors{One: one, Four: four}, nil
}

func uniqueOfLength(inputs []commons.SymbolSet, length int, digit commons.Digit) (commons.SymbolSet, error) {
	candidates := collections.NewIdentitySet[commons.SymbolSet]()
	for _, s := range inputs {
		if s.Len() == length {
			_ = candidates.Add(s)
		}
	}
	anchor, err := candidates.Only()
	switch {
	case errors.Is(err, collections.ErrEmpty):
		return 0, fmt.Errorf("%w: no input signal of length %d for digit %s", ErrMissingAnchor, length, digit)
	case errors.Is(err, collections.ErrNotSingleton):
		return 0, fmt.Errorf("%w: %w: %d input signals of length %d for digit %s %v",
			ErrMissingAnchor, ErrDuplicateAnchor, candidates.Size(), length, digit, candidates.Entries())
	}
	return anchor, nil
}
