package money

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	gvdecimal "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

var (
	bigOne  = big.NewInt(1)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// NewDecimal converts a number to an exact decimal.
// The following types are supported:
//
//	decimal.Decimal (github.com/shopspring/decimal)
//	decimal.Decimal (github.com/govalues/decimal)
//	*big.Rat, *big.Int
//	int, int8, int16, int32, int64
//	uint, uint8, uint16, uint32, uint64
//	float32, float64
//	string
//
// Strings may be written in decimal ("-1.23"), exponent ("1.5e3") or
// rational ("1/4") notation. Floats are converted using their shortest
// decimal representation.
// The scale of the input is kept: "1.50" has two digits after the decimal point.
//
// NewDecimal returns an error if:
//   - the type is not supported or the value is malformed, NaN or infinite
//     ([ErrNumberFormat]);
//   - the value is a rational number without a finite decimal expansion,
//     such as 1/3 ([ErrRoundingRequired]).
func NewDecimal(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case decimal.Decimal:
		return canonical(v), nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: nil %T", ErrNumberFormat, v)
		}
		return canonical(*v), nil
	case gvdecimal.Decimal:
		return parseDecimal(v.String())
	case *big.Rat:
		if v == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: nil %T", ErrNumberFormat, v)
		}
		return ratToDecimal(v)
	case *big.Int:
		if v == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: nil %T", ErrNumberFormat, v)
		}
		return decimal.NewFromBigInt(new(big.Int).Set(v), 0), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case float32:
		return parseFloat(float64(v), 32)
	case float64:
		return parseFloat(v, 64)
	case string:
		if strings.Contains(v, "/") {
			r, err := parseRat(v)
			if err != nil {
				return decimal.Decimal{}, err
			}
			return ratToDecimal(r)
		}
		return parseDecimal(v)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: type %T is not supported", ErrNumberFormat, v)
	}
}

// NewRat converts a number to an exact rational.
// It supports the same types as [NewDecimal], but never requires rounding:
// "1/3" is a valid input.
func NewRat(v any) (*big.Rat, error) {
	switch v := v.(type) {
	case *big.Rat:
		if v == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrNumberFormat, v)
		}
		return new(big.Rat).Set(v), nil
	case string:
		if strings.Contains(v, "/") {
			return parseRat(v)
		}
	}
	d, err := NewDecimal(v)
	if err != nil {
		return nil, err
	}
	return d.Rat(), nil
}

// parseDecimal parses a decimal string, keeping its scale.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" || strings.TrimSpace(s) != s {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", ErrNumberFormat, s, err)
	}
	return canonical(d), nil
}

// parseRat parses a string in "numerator/denominator" notation.
func parseRat(s string) (*big.Rat, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok || !isInteger(num) || !isInteger(den) {
		return nil, fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	n, _ := new(big.Int).SetString(num, 10)
	m, _ := new(big.Int).SetString(den, 10)
	if m.Sign() == 0 {
		return nil, fmt.Errorf("%w: %q: division by zero", ErrNumberFormat, s)
	}
	return new(big.Rat).SetFrac(n, m), nil
}

// isInteger reports whether s is an optionally signed sequence of decimal digits.
func isInteger(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseFloat(f float64, bitSize int) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrNumberFormat, f)
	}
	return parseDecimal(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// canonical returns d with a non-positive exponent, so that the scale of a
// decimal is always the negated exponent.
func canonical(d decimal.Decimal) decimal.Decimal {
	exp := d.Exponent()
	if exp <= 0 {
		return d
	}
	coef := d.Coefficient()
	coef.Mul(coef, pow10(int(exp)))
	return decimal.NewFromBigInt(coef, 0)
}

// ratToDecimal demotes a rational to the decimal with the smallest scale that
// represents it exactly.
// It returns [ErrRoundingRequired] if the reduced denominator has a prime
// factor other than 2 or 5.
func ratToDecimal(r *big.Rat) (decimal.Decimal, error) {
	den := new(big.Int).Set(r.Denom())
	twos := int(den.TrailingZeroBits())
	den.Rsh(den, uint(twos))
	fives := 0
	q, m := new(big.Int), new(big.Int)
	for {
		q.QuoRem(den, bigFive, m)
		if m.Sign() != 0 {
			break
		}
		den.Set(q)
		fives++
	}
	if den.Cmp(bigOne) != 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %v has no finite decimal expansion", ErrRoundingRequired, r.RatString())
	}
	scale := max(twos, fives)
	if scale > math.MaxInt32 {
		return decimal.Decimal{}, fmt.Errorf("%w: scale %v out of range", ErrRoundingRequired, scale)
	}
	coef := new(big.Int).Mul(r.Num(), pow10(scale))
	coef.Quo(coef, r.Denom())
	return decimal.NewFromBigInt(coef, -int32(scale)), nil
}

// scaleOf returns the number of digits after the decimal point.
func scaleOf(d decimal.Decimal) int {
	if exp := d.Exponent(); exp < 0 {
		return -int(exp)
	}
	return 0
}

// movePointRight returns d * 10^n keeping every fractional digit that remains.
func movePointRight(d decimal.Decimal, n int) decimal.Decimal {
	return canonical(decimal.NewFromBigInt(d.Coefficient(), d.Exponent()+int32(n)))
}

// formatDecimal returns d with all of its fractional digits, including
// trailing zeros.
func formatDecimal(d decimal.Decimal) string {
	if scale := scaleOf(d); scale > 0 {
		return d.StringFixed(int32(scale))
	}
	return d.String()
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
