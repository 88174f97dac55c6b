package commons

import (
	"errors"
	"fmt"
	"strings"
)

const (
	InputCount  = 10
	OutputCount = 4
)

var ErrMalformedEntry = errors.New("malformed entry")

// Entry is one display: ten scrambled digit patterns and four scrambled
// output digits, all under the same wiring.
type Entry struct {
	Line    int
	Inputs  [InputCount]SymbolSet
	Outputs [OutputCount]SymbolSet
}

func NewEntry(line int, inputs, outputs []SymbolSet) (Entry, error) {
	e := Entry{Line: line}
	if len(inputs) != InputCount {
		return e, fmt.Errorf("%w: want %d input signals, got %d", ErrMalformedEntry, InputCount, len(inputs))
	}
	if len(outputs) != OutputCount {
		return e, fmt.Errorf("%w: want %d output signals, got %d", ErrMalformedEntry, OutputCount, len(outputs))
	}
	copy(e.Inputs[:], inputs)
	copy(e.Outputs[:], outputs)
	return e, nil
}

// expectedShape counts how many input signals of each length a
// well-formed entry carries, shortest length first.
var expectedShape = []struct {
	length int
	count  int
}{
	{2, 1}, {3, 1}, {4, 1}, {5, 3}, {6, 3}, {7, 1},
}

// CheckShape verifies the input signals carry one pattern per digit by
// length: one each of 2, 3, 4 and 7 segments, three of 5 and three of 6.
func (e *Entry) CheckShape() error {
	counts := make(map[int]int)
	for _, s := range e.Inputs {
		counts[s.Len()]++
	}
	for _, want := range expectedShape {
		if counts[want.length] != want.count {
			return fmt.Errorf("%w: want %d input signals of length %d, got %d",
				ErrMalformedEntry, want.count, want.length, counts[want.length])
		}
	}
	return nil
}

func (e Entry) String() string {
	in := make([]string, 0, InputCount)
	for _, s := range e.Inputs {
		in = append(in, s.String())
	}
	out := make([]string, 0, OutputCount)
	for _, s := range e.Outputs {
		out = append(out, s.String())
	}
	return fmt.Sprintf("%s | %s", strings.Join(in, " "), strings.Join(out, " "))
}
