// Package calibrate decides whether calibration equations can be made true
// by inserting operators between their operands.
//
// Expressions are evaluated strictly left to right with no precedence. An
// equation with N operands has k^(N-1) candidate operator sequences for k
// operators; the search walks them depth first and abandons a branch as soon
// as the accumulator passes the target and no later operand is zero.
package calibrate

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/polarkac/advent-of-code/internal/parse"
)

// ErrOverflow indicates the sum of solvable targets no longer fits in a uint64.
var ErrOverflow = errors.New("calibrate: total exceeds 64 bits")

// Equation is a target value and the ordered operands that must produce it.
type Equation struct {
	Target   uint64
	Operands []uint64
}

// ParseEquations reads lines of the form "target: a b c". Blank lines are
// ignored; everything else must parse.
func ParseEquations(text string) ([]Equation, error) {
	lines := parse.Lines(text)
	eqs := make([]Equation, 0, len(lines))
	for i, line := range lines {
		eq, err := parseEquation(i+1, line)
		if err != nil {
			return nil, err
		}
		eqs = append(eqs, eq)
	}
	return eqs, nil
}

func parseEquation(n int, line string) (Equation, error) {
	target, rest, found := strings.Cut(line, ":")
	if !found {
		return Equation{}, parse.Errorf(n, "missing ':' delimiter")
	}
	t, err := parse.Uint64(n, target)
	if err != nil {
		return Equation{}, err
	}
	operands, err := parse.Uint64s(n, rest)
	if err != nil {
		return Equation{}, err
	}
	if len(operands) == 0 {
		return Equation{}, parse.Errorf(n, "equation has no operands")
	}
	return Equation{Target: t, Operands: operands}, nil
}

// Evaluate applies seq left to right. seq must hold len(Operands)-1
// operators. ok is false on overflow or a length mismatch.
func (e Equation) Evaluate(seq []Operator) (v uint64, ok bool) {
	if len(e.Operands) == 0 || len(seq) != len(e.Operands)-1 {
		return 0, false
	}
	acc := e.Operands[0]
	for i, op := range seq {
		if acc, ok = op.Apply(acc, e.Operands[i+1]); !ok {
			return 0, false
		}
	}
	return acc, true
}

// Solvable reports whether some sequence of ops makes the equation true.
func (e Equation) Solvable(ops []Operator) bool {
	if len(e.Operands) == 0 {
		return false
	}
	// zeroAfter[i] is true if any operand at index >= i is zero.
	zeroAfter := make([]bool, len(e.Operands)+1)
	for i := len(e.Operands) - 1; i >= 0; i-- {
		zeroAfter[i] = zeroAfter[i+1] || e.Operands[i] == 0
	}

	var search func(acc uint64, i int) bool
	search = func(acc uint64, i int) bool {
		if i == len(e.Operands) {
			return acc == e.Target
		}
		if acc > e.Target && !zeroAfter[i] {
			return false
		}
		for _, op := range ops {
			v, ok := op.Apply(acc, e.Operands[i])
			if !ok {
				continue
			}
			if search(v, i+1) {
				return true
			}
		}
		return false
	}
	return search(e.Operands[0], 1)
}

// Contribution returns the target when the equation is solvable with ops
// and zero otherwise.
func (e Equation) Contribution(ops []Operator) uint64 {
	if e.Solvable(ops) {
		return e.Target
	}
	return 0
}

// Total sums the contributions of all equations. It fails with ErrOverflow
// instead of wrapping when the sum passes math.MaxUint64.
func Total(eqs []Equation, ops []Operator) (uint64, error) {
	var total uint64
	for i, eq := range eqs {
		sum, carry := bits.Add64(total, eq.Contribution(ops), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: adding equation %d (target %d)", ErrOverflow, i+1, eq.Target)
		}
		total = sum
	}
	return total, nil
}
