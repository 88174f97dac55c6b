package commons

import "fmt"

// Digit is the decoded meaning of a signal within one entry.
type Digit uint8

func (d Digit) String() string {
	return fmt.Sprintf("%d", uint8(d))
}

// CanonicalSegments lists the unscrambled segments of each digit on a
// standard seven-segment display.
var CanonicalSegments = [10]string{
	"abcefg",  // 0
	"cf",      // 1
	"acdeg",   // 2
	"acdfg",   // 3
	"bcdf",    // 4
	"abdfg",   // 5
	"abdefg",  // 6
	"acf",     // 7
	"abcdefg", // 8
	"abcdfg",  // 9
}

// UniqueLengths maps the signal lengths that identify a digit on their own.
var UniqueLengths = map[int]Digit{
	2: 1,
	3: 7,
	4: 4,
	7: 8,
}

// HasUniqueLength reports whether s can be read without deduction.
func HasUniqueLength(s SymbolSet) bool {
	_, ok := UniqueLengths[s.Len()]
	return ok
}
