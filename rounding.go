package money

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// RoundingMode specifies how digits are discarded when a value is rounded
// to fewer digits after the decimal point.
// The set of modes is closed: values outside the declared constants are
// rejected by [Currency.SetRoundingMode] and [Money.Round].
type RoundingMode int

const (
	// RoundUnnecessary asserts that no rounding is needed.
	// Rounding a value that would lose digits fails with [ErrRoundingRequired].
	RoundUnnecessary RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundHalfUp rounds toward the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds toward the nearest neighbor, ties toward zero.
	RoundHalfDown
	// RoundHalfCeiling rounds toward the nearest neighbor, ties toward positive infinity.
	RoundHalfCeiling
	// RoundHalfFloor rounds toward the nearest neighbor, ties toward negative infinity.
	RoundHalfFloor
	// RoundHalfEven rounds toward the nearest neighbor, ties toward the even
	// neighbor (banker's rounding).
	RoundHalfEven
)

var roundingModeNames = [...]string{
	RoundUnnecessary: "Unnecessary",
	RoundUp:          "Up",
	RoundDown:        "Down",
	RoundCeiling:     "Ceiling",
	RoundFloor:       "Floor",
	RoundHalfUp:      "HalfUp",
	RoundHalfDown:    "HalfDown",
	RoundHalfCeiling: "HalfCeiling",
	RoundHalfFloor:   "HalfFloor",
	RoundHalfEven:    "HalfEven",
}

// IsValid returns true if m is one of the declared rounding modes.
func (m RoundingMode) IsValid() bool {
	return m >= RoundUnnecessary && m <= RoundHalfEven
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingModeNames[m]
}

// roundAway reports whether the truncated quotient must move one unit
// away from zero.
// half compares the discarded fraction with one half: -1 below, 0 equal, +1 above.
func (m RoundingMode) roundAway(neg, odd bool, half int) bool {
	switch m {
	case RoundUp:
		return true
	case RoundDown:
		return false
	case RoundCeiling:
		return !neg
	case RoundFloor:
		return neg
	case RoundHalfUp:
		return half >= 0
	case RoundHalfDown:
		return half > 0
	case RoundHalfCeiling:
		return half > 0 || half == 0 && !neg
	case RoundHalfFloor:
		return half > 0 || half == 0 && neg
	case RoundHalfEven:
		return half > 0 || half == 0 && odd
	}
	return false
}

// roundDecimal returns d with exactly scale digits after the decimal point.
// If d has fewer digits it is zero-padded, otherwise the extra digits are
// discarded according to mode.
func roundDecimal(d decimal.Decimal, scale int, mode RoundingMode) (decimal.Decimal, error) {
	if err := checkRounding(scale, mode); err != nil {
		return decimal.Decimal{}, err
	}
	coef, cur := d.Coefficient(), scaleOf(d)
	if cur <= scale {
		coef.Mul(coef, pow10(scale-cur))
		return decimal.NewFromBigInt(coef, -int32(scale)), nil
	}
	q, ok := quoRound(coef, pow10(cur-scale), mode)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %v to %v digit(s)", ErrRoundingRequired, formatDecimal(d), scale)
	}
	return decimal.NewFromBigInt(q, -int32(scale)), nil
}

// roundRat returns r as a decimal with exactly scale digits after the
// decimal point, discarding the extra digits according to mode.
func roundRat(r *big.Rat, scale int, mode RoundingMode) (decimal.Decimal, error) {
	if err := checkRounding(scale, mode); err != nil {
		return decimal.Decimal{}, err
	}
	num := new(big.Int).Mul(r.Num(), pow10(scale))
	q, ok := quoRound(num, r.Denom(), mode)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %v to %v digit(s)", ErrRoundingRequired, r.RatString(), scale)
	}
	return decimal.NewFromBigInt(q, -int32(scale)), nil
}

func checkRounding(scale int, mode RoundingMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, mode)
	}
	if scale < 0 || scale > math.MaxInt32 {
		return fmt.Errorf("%w: scale %v out of range", ErrInvalidArgument, scale)
	}
	return nil
}

// quoRound returns num / den rounded to an integer according to mode.
// The denominator must be positive.
// It returns false if the mode is [RoundUnnecessary] and the division is inexact.
func quoRound(num, den *big.Int, mode RoundingMode) (*big.Int, bool) {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q, true
	}
	if mode == RoundUnnecessary {
		return nil, false
	}
	neg := num.Sign() < 0
	r.Abs(r)
	half := r.Lsh(r, 1).Cmp(den)
	if mode.roundAway(neg, q.Bit(0) == 1, half) {
		if neg {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return q, true
}
