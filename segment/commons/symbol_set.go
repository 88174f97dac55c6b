package commons

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var ErrInvalidSegment = errors.New("invalid segment identifier")

// SymbolSet is an unordered set of segment identifiers. Bit i holds the
// letter 'a'+i, so two sets with the same members compare equal with ==.
type SymbolSet uint32

const alphabetSize = 26

// ParseSymbolSet builds a set from a token of ASCII letters. Case and
// repetition are ignored.
func ParseSymbolSet(token string) (SymbolSet, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidSegment)
	}
	var s SymbolSet
	for i := 0; i < len(token); i++ {
		c := token[i] | 0x20
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: %q in %q", ErrInvalidSegment, token[i], token)
		}
		s |= 1 << (c - 'a')
	}
	return s, nil
}

// MustParseSymbolSet is ParseSymbolSet for literals known to be valid.
func MustParseSymbolSet(token string) SymbolSet {
	s, err := ParseSymbolSet(token)
	if err != nil {
		panic(err)
	}
	return s
}

func (s SymbolSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Overlap counts the segments present in both sets.
func (s SymbolSet) Overlap(other SymbolSet) int {
	return bits.OnesCount32(uint32(s & other))
}

// String renders the members in alphabetical order.
func (s SymbolSet) String() string {
	var b strings.Builder
	for i := 0; i < alphabetSize; i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
