package segment

import (
	"fmt"

	"github.com/tuannh982/segment-decoder/segment/commons"
	"github.com/tuannh982/segment-decoder/utils/collections"
	"github.com/tuannh982/segment-decoder/utils/math"
)

// Decoder reads the output value of single entries.
type Decoder struct {
	strict bool
}

// NewDecoder returns a Decoder. In strict mode every entry's inputs are
// checked for one pattern per digit before anything is classified.
func NewDecoder(strict bool) *Decoder {
	return &Decoder{strict: strict}
}

// Digits classifies the four output signals of e in order.
func (d *Decoder) Digits(e *commons.Entry) ([commons.OutputCount]commons.Digit, error) {
	var digits [commons.OutputCount]commons.Digit
	if d.strict {
		if err := e.CheckShape(); err != nil {
			return digits, err
		}
	}
	anchors, err := FindAnchors(e.Inputs[:])
	if err != nil {
		return digits, err
	}
	known := collections.NewHashMap[commons.SymbolSet, commons.Digit]()
	for i, signal := range e.Outputs {
		digit, err := known.GetOrCompute(signal, func() (commons.Digit, error) {
			return Classify(signal, anchors)
		})
		if err != nil {
			return digits, fmt.Errorf("output %d: %w", i+1, err)
		}
		digits[i] = digit
	}
	return digits, nil
}

// Decode returns the output value of e, first digit most significant.
func (d *Decoder) Decode(e *commons.Entry) (int, error) {
	digits, err := d.Digits(e)
	if err != nil {
		return 0, err
	}
	return math.FoldDigits(digits[:], 10), nil
}
