// Package digits implements the decimal digit arithmetic used by the
// concatenation operator and the stone splitting rule.
//
// All helpers work on uint64 with integer arithmetic only; no floating point
// log10 is involved, so values near 2^64 are counted exactly.
package digits

// MaxPow10 is the largest n for which 10^n fits in a uint64.
const MaxPow10 = 19

var pow10 = func() [MaxPow10 + 1]uint64 {
	var t [MaxPow10 + 1]uint64
	t[0] = 1
	for i := 1; i <= MaxPow10; i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// Count returns the number of decimal digits of v, i.e. floor(log10(v)) + 1,
// with Count(0) == 1.
func Count(v uint64) int {
	n := 1
	for n <= MaxPow10 && v >= pow10[n] {
		n++
	}
	return n
}

// Pow10 returns 10^n. ok is false when the result does not fit in a uint64.
func Pow10(n int) (v uint64, ok bool) {
	if n < 0 || n > MaxPow10 {
		return 0, false
	}
	return pow10[n], true
}

// Split divides v into the number formed by its leading digits and the
// number formed by its last n digits. Leading zeros of the right half are
// not preserved: Split(1000, 2) == (10, 0).
func Split(v uint64, n int) (left, right uint64) {
	p, ok := Pow10(n)
	if !ok {
		return 0, v
	}
	return v / p, v % p
}
