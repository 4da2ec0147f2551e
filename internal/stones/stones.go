// Package stones evolves a row of engraved stones under the blink rule.
//
// On every blink each stone changes simultaneously:
//
//  1. 0 becomes 1.
//  2. A value with an even number of digits splits into two stones holding
//     the left and right halves of its digits (1000 → 10 and 0).
//  3. Anything else is multiplied by 2024.
//
// Order never matters to the answer, and the number of stones grows
// exponentially while the number of distinct values stays small, so the
// state is kept as a Multiset of value → count and every distinct value is
// rewritten once per blink.
package stones

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/polarkac/advent-of-code/internal/digits"
	"github.com/polarkac/advent-of-code/internal/parse"
)

// Multiplier is applied to stones that neither start at zero nor split.
const Multiplier = 2024

// ErrOverflow indicates a stone value or a stone count no longer fits in a uint64.
var ErrOverflow = errors.New("stones: value exceeds 64 bits")

// Multiset maps a stone value to the number of stones carrying it.
// Counts are always strictly positive.
type Multiset map[uint64]uint64

// Parse reads space-separated non-negative integers.
func Parse(text string) (Multiset, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(0, "no stones")
	}
	if len(lines) > 1 {
		return nil, parse.Errorf(2, "stones must be on a single line")
	}
	values, err := parse.Uint64s(1, lines[0])
	if err != nil {
		return nil, err
	}
	return FromValues(values...), nil
}

// FromValues builds a Multiset from individual stone values.
func FromValues(values ...uint64) Multiset {
	m := make(Multiset, len(values))
	for _, v := range values {
		m[v]++
	}
	return m
}

// Rewrite applies the blink rule to one stone. When split is true the stone
// became the two stones left and right; otherwise it became left alone.
func Rewrite(v uint64) (left, right uint64, split bool, err error) {
	if v == 0 {
		return 1, 0, false, nil
	}
	if n := digits.Count(v); n%2 == 0 {
		left, right = digits.Split(v, n/2)
		return left, right, true, nil
	}
	hi, lo := bits.Mul64(v, Multiplier)
	if hi != 0 {
		return 0, 0, false, fmt.Errorf("%w: %d * %d", ErrOverflow, v, Multiplier)
	}
	return lo, 0, false, nil
}

// Blink returns the multiset after a single blink. m is not modified.
func (m Multiset) Blink() (Multiset, error) {
	next := make(Multiset, len(m)*2)
	for v, count := range m {
		if count == 0 {
			continue
		}
		left, right, split, err := Rewrite(v)
		if err != nil {
			return nil, err
		}
		if err := next.add(left, count); err != nil {
			return nil, err
		}
		if split {
			if err := next.add(right, count); err != nil {
				return nil, err
			}
		}
	}
	return next, nil
}

// Evolve returns the multiset after n blinks. m is not modified.
func (m Multiset) Evolve(n int) (Multiset, error) {
	cur := m.Clone()
	for i := 0; i < n; i++ {
		next, err := cur.Blink()
		if err != nil {
			return nil, fmt.Errorf("blink %d: %w", i+1, err)
		}
		cur = next
	}
	return cur, nil
}

// Total returns the number of stones. It saturates at the maximum uint64.
func (m Multiset) Total() uint64 {
	var total uint64
	for _, count := range m {
		sum, carry := bits.Add64(total, count, 0)
		if carry != 0 {
			return ^uint64(0)
		}
		total = sum
	}
	return total
}

// Clone returns a copy of m.
func (m Multiset) Clone() Multiset {
	out := make(Multiset, len(m))
	for v, c := range m {
		out[v] = c
	}
	return out
}

func (m Multiset) add(v, count uint64) error {
	sum, carry := bits.Add64(m[v], count, 0)
	if carry != 0 {
		return fmt.Errorf("%w: count of stone %d", ErrOverflow, v)
	}
	m[v] = sum
	return nil
}
