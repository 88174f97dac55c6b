package math

import "golang.org/x/exp/constraints"

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	}
	return base + 1
}

func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// FoldDigits reads digits as a number in the given base, most significant
// first.
func FoldDigits[D constraints.Integer, T constraints.Integer](digits []D, base T) T {
	var value T
	for _, d := range digits {
		value = value*base + T(d)
	}
	return value
}
