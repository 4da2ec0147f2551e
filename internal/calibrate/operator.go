package calibrate

import (
	"math/bits"

	"github.com/polarkac/advent-of-code/internal/digits"
)

// Operator combines an accumulator with the next operand.
type Operator uint8

const (
	Add Operator = iota
	Multiply
	Concat
)

// Operator sets used by the two calibration variants.
var (
	Basic    = []Operator{Add, Multiply}
	Extended = []Operator{Add, Multiply, Concat}
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Concat:
		return "||"
	}
	return "?"
}

// Apply evaluates left op right. ok is false when the result overflows uint64.
//
// Concat appends the decimal digits of right to left:
// left * 10^digits(right) + right, where digits(0) == 1. A zero left
// contributes nothing, so 0 || right is right even for 20-digit values.
func (op Operator) Apply(left, right uint64) (v uint64, ok bool) {
	switch op {
	case Add:
		sum, carry := bits.Add64(left, right, 0)
		return sum, carry == 0
	case Multiply:
		hi, lo := bits.Mul64(left, right)
		return lo, hi == 0
	case Concat:
		if left == 0 {
			return right, true
		}
		p, ok := digits.Pow10(digits.Count(right))
		if !ok {
			return 0, false
		}
		shifted, ok := Multiply.Apply(left, p)
		if !ok {
			return 0, false
		}
		return Add.Apply(shifted, right)
	}
	return 0, false
}

// Sequences enumerates every operator sequence of length n drawn from ops,
// in odometer order with the last position varying fastest.
func Sequences(ops []Operator, n int) [][]Operator {
	if n < 0 || len(ops) == 0 {
		return nil
	}
	out := [][]Operator{{}}
	for i := 0; i < n; i++ {
		next := make([][]Operator, 0, len(out)*len(ops))
		for _, prefix := range out {
			for _, op := range ops {
				seq := make([]Operator, len(prefix)+1)
				copy(seq, prefix)
				seq[len(prefix)] = op
				next = append(next, seq)
			}
		}
		out = next
	}
	return out
}
