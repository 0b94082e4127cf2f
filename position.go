package fracseq

import (
	"fmt"
	"math"
	"math/bits"
)

// Position is an immutable ordering tag for elements of a sequence.
//
// A Position is an unreduced fraction num/denom. It has no numeric meaning
// beyond ordering: positions are generated by mediant addition (see Mediant),
// not by fraction arithmetic. The denominator of a valid position is always
// at least 1.
//
// Both components are plain uint64 values, which makes it simple to persist a
// position as two integer columns (see Pair).
type Position struct {
	num   uint64
	denom uint64
}

const denomMin = 1

// MinPosition is the implicit left boundary of every sequence. Elements
// prepended to a sequence get a position between MinPosition and the first
// element's position.
var MinPosition = Position{num: 0, denom: 1}

// MaxPosition is the largest position with denominator 1.
var MaxPosition = Position{num: math.MaxUint64, denom: 1}

// n1d0 is not a valid position; it is the increment term for appending.
var n1d0 = Position{num: 1, denom: 0}

// NewPosition creates a valid position, i.e. one with denom >= 1.
// A denominator of 0 is silently set to 1.
func NewPosition(num, denom uint64) Position {
	if denom < denomMin {
		denom = denomMin
	}
	return Position{num: num, denom: denom}
}

// DefaultPosition returns 1/1, the position of the first element pushed to an
// empty sequence.
func DefaultPosition() Position {
	return Position{num: 1, denom: 1}
}

// Num returns the numerator of p.
func (p Position) Num() uint64 {
	return p.num
}

// Denom returns the denominator of p.
func (p Position) Denom() uint64 {
	return p.denom
}

// Pair decomposes p into numerator and denominator. The decomposition is
// lossless, NewPosition(p.Pair()) == p.
func (p Position) Pair() (uint64, uint64) {
	return p.num, p.denom
}

// Add is mediant addition:
//
//	(n1, d1) ⊕ (n2, d2) = (n1+n2, d1+d2)
//
// This is deliberately not fraction addition. Replacing it by n1/d1 + n2/d2
// breaks the property that a new position can always be generated between
// two neighbours.
//
// Add panics with ErrPositionOverflow if a component overflows.
func (p Position) Add(q Position) Position {
	r, err := checkedAdd(p, q)
	if err != nil {
		T().Errorf("fracseq: %v (%v ⊕ %v)", err, p, q)
		panic(err)
	}
	return r
}

// Mediant returns a ⊕ b. If a < b, the result is strictly between a and b.
// Mediant is symmetric.
//
// Mediant panics with ErrPositionOverflow if a component overflows.
func Mediant(a, b Position) Position {
	return a.Add(b)
}

// CheckedMediant is like Mediant, but returns ErrPositionOverflow instead of
// panicking.
func CheckedMediant(a, b Position) (Position, error) {
	return checkedAdd(a, b)
}

// Increment returns last ⊕ 1/0, i.e. the numerator is increased by one and the
// denominator stays unchanged. The result is always greater than last.
func Increment(last Position) Position {
	return last.Add(n1d0)
}

func checkedAdd(p, q Position) (Position, error) {
	num, c1 := bits.Add64(p.num, q.num, 0)
	denom, c2 := bits.Add64(p.denom, q.denom, 0)
	if c1 != 0 || c2 != 0 {
		return Position{}, ErrPositionOverflow
	}
	return Position{num: num, denom: denom}, nil
}

// Reduced returns p with numerator and denominator divided by their greatest
// common divisor.
func (p Position) Reduced() Position {
	d := gcd(p.num, p.denom)
	if d <= 1 {
		return p
	}
	return Position{num: p.num / d, denom: p.denom / d}
}

// Equal reports whether p and q denote the same fraction. Both positions are
// reduced independently before comparing, thus 2/1 equals 4/2.
//
// Equal is the only test for "same position" used by sequences.
func (p Position) Equal(q Position) bool {
	if p.num == q.num && p.denom == q.denom {
		return true
	}
	return p.Reduced() == q.Reduced()
}

// Compare returns -1, 0 or +1 depending on whether p is less than, equal to,
// or greater than q, taking both as rational numbers.
//
// The comparison is exact: it cross-multiplies into 128 bit products instead of
// dividing in floating point, so distinct positions never compare as equal.
func (p Position) Compare(q Position) int {
	hi1, lo1 := bits.Mul64(p.num, q.denom)
	hi2, lo2 := bits.Mul64(q.num, p.denom)
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	}
	return 0
}

// Less reports whether p orders strictly before q.
func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

// Float64 returns num/denom as a float. Use for display only; distinct
// positions with large components may map to the same float.
func (p Position) Float64() float64 {
	return float64(p.num) / float64(p.denom)
}

// String returns "num/denom".
func (p Position) String() string {
	return fmt.Sprintf("%d/%d", p.num, p.denom)
}

// GoString returns "num/denom (float)", for debugging.
func (p Position) GoString() string {
	return fmt.Sprintf("%d/%d (%g)", p.num, p.denom, p.Float64())
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
