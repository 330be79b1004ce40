package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Money type represents an exact monetary amount in a currency.
// Its zero value corresponds to an amount of 0 with a nil currency.
//
// Money is immutable: every operation returns a new value and none of them
// mutates the referenced [Currency]. It is designed to be safe for concurrent
// use by multiple goroutines.
type Money struct {
	amount decimal.Decimal // exact amount of arbitrary scale
	curr   *Currency       // shared, not owned
}

func newMoney(d decimal.Decimal, c *Currency) Money {
	return Money{amount: d, curr: c}
}

// Of returns an amount of money in the given currency.
// The amount can be any number supported by [NewDecimal], for example:
//
//	money.Of("1.23", usd)
//	money.Of(5, usd)
//	money.Of(decimal.RequireFromString("0.001"), usd)
//
// The scale of the amount is kept as is and is not checked against the
// rounding precision of the currency.
//
// Of returns an error if the amount is not a valid number ([ErrNumberFormat])
// or a rational number without a finite decimal expansion ([ErrRoundingRequired]).
func Of(amount any, curr *Currency) (Money, error) {
	d, err := NewDecimal(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newMoney(d, curr), nil
}

// MustOf is like [Of] but panics if the amount cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustOf(amount any, curr *Currency) Money {
	m, err := Of(amount, curr)
	if err != nil {
		panic(fmt.Sprintf("Of(%v, %v) failed: %v", amount, curr, err))
	}
	return m
}

// Zero returns an amount of 0 in the given currency.
func Zero(curr *Currency) Money {
	return newMoney(decimal.New(0, 0), curr)
}

// Min returns the smallest of the given amounts.
// If several amounts are equal to the minimum, the first one is returned.
//
// Min returns an error if the amounts are not all in the same currency.
func Min(first Money, rest ...Money) (Money, error) {
	res, err := extreme(first, rest, -1)
	if err != nil {
		return Money{}, fmt.Errorf("computing [min(%v)]: %w", joinMoney(first, rest), err)
	}
	return res, nil
}

// Max returns the largest of the given amounts.
// If several amounts are equal to the maximum, the first one is returned.
//
// Max returns an error if the amounts are not all in the same currency.
func Max(first Money, rest ...Money) (Money, error) {
	res, err := extreme(first, rest, 1)
	if err != nil {
		return Money{}, fmt.Errorf("computing [max(%v)]: %w", joinMoney(first, rest), err)
	}
	return res, nil
}

// extreme scans the amounts from left to right and replaces the result only
// by an amount comparing to it with the given sign.
func extreme(first Money, rest []Money, sign int) (Money, error) {
	res := first
	for _, m := range rest {
		r, err := amountOf(res, m)
		if err != nil {
			return Money{}, err
		}
		if r.Cmp(res.Amount().Rat()) == sign {
			res = m
		}
	}
	return res, nil
}

// Total returns the sum of the given amounts.
// The currency of the first amount is authoritative.
//
// Total returns an error if the amounts are not all in the same currency.
func Total(first Money, rest ...Money) (Money, error) {
	res := first
	for _, m := range rest {
		var err error
		res, err = res.plus(m)
		if err != nil {
			return Money{}, fmt.Errorf("computing [total(%v)]: %w", joinMoney(first, rest), err)
		}
	}
	return res, nil
}

func joinMoney(first Money, rest []Money) string {
	s := make([]string, 0, len(rest)+1)
	s = append(s, first.String())
	for _, m := range rest {
		s = append(s, m.String())
	}
	return strings.Join(s, ", ")
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() *Currency {
	return m.curr
}

// Scale returns the number of digits after the decimal point.
func (m Money) Scale() int {
	return scaleOf(m.Amount())
}

// MinorAmount returns the amount in minor units of its currency
// (e.g. cents, pennies, fens): the decimal point is moved to the right by
// [Currency.RoundingPrecision] digits.
//
// If the scale of the amount is greater than the precision of the currency,
// the result keeps the extra digits: USD 1.23 returns 123, while USD 1.2345
// returns 123.45. Use [Money.RoundToCurr] first to obtain whole minor units.
func (m Money) MinorAmount() decimal.Decimal {
	return movePointRight(m.Amount(), m.Currency().RoundingPrecision())
}

// UnscaledAmount returns all digits of the amount as an integer, ignoring the
// decimal point. For example, USD 123.4567 returns 1234567.
func (m Money) UnscaledAmount() *big.Int {
	return m.Amount().Coefficient()
}

// Plus returns the exact sum of m and that.
// The operand can be a [Value] in the same currency or a raw number.
// The result has the smallest scale that represents it exactly.
//
// Plus returns an error if:
//   - that is a [Value] in a different currency ([*CurrencyMismatchError]);
//   - that is not a valid number ([ErrNumberFormat]);
//   - the sum has no finite decimal expansion ([ErrRoundingRequired]),
//     which can only happen for rational operands such as "1/3".
func (m Money) Plus(that any) (Money, error) {
	n, err := m.plus(that)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, that, err)
	}
	return n, nil
}

func (m Money) plus(that any) (Money, error) {
	r, err := amountOf(m, that)
	if err != nil {
		return Money{}, err
	}
	d, err := ratToDecimal(r.Add(m.Amount().Rat(), r))
	if err != nil {
		return Money{}, err
	}
	return newMoney(d, m.Currency()), nil
}

// Minus returns the exact difference between m and that.
// See [Money.Plus] for the operand and the errors.
func (m Money) Minus(that any) (Money, error) {
	n, err := m.minus(that)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, that, err)
	}
	return n, nil
}

func (m Money) minus(that any) (Money, error) {
	r, err := amountOf(m, that)
	if err != nil {
		return Money{}, err
	}
	d, err := ratToDecimal(r.Sub(m.Amount().Rat(), r))
	if err != nil {
		return Money{}, err
	}
	return newMoney(d, m.Currency()), nil
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return newMoney(m.Amount().Abs(), m.Currency())
}

// Negated returns an amount with the opposite sign.
func (m Money) Negated() Money {
	return newMoney(m.Amount().Neg(), m.Currency())
}

// ConvertedTo returns the amount multiplied by the exchange rate, in the
// given currency. The rate can be any number supported by [NewRat].
//
// The currency of m is not checked and the result is not rounded to the
// precision of the target currency. See also [Money.RoundToCurr] and [Converter].
//
// ConvertedTo returns an error if the rate is not a valid number
// ([ErrNumberFormat]) or the product has no finite decimal expansion
// ([ErrRoundingRequired]).
func (m Money) ConvertedTo(curr *Currency, rate any) (Money, error) {
	n, err := m.convertedTo(curr, rate)
	if err != nil {
		return Money{}, fmt.Errorf("converting [%v] to %v at rate %v: %w", m, curr, rate, err)
	}
	return n, nil
}

func (m Money) convertedTo(curr *Currency, rate any) (Money, error) {
	r, err := NewRat(rate)
	if err != nil {
		return Money{}, err
	}
	d, err := ratToDecimal(r.Mul(m.Amount().Rat(), r))
	if err != nil {
		return Money{}, err
	}
	return newMoney(d, curr), nil
}

// Round returns the amount rounded or zero-padded to the specified number of
// digits after the decimal point.
// See also method [Money.RoundToCurr].
//
// Round returns an error if:
//   - the scale is negative or the mode is not valid ([ErrInvalidArgument]);
//   - the mode is [RoundUnnecessary] and digits would be discarded ([ErrRoundingRequired]).
func (m Money) Round(scale int, mode RoundingMode) (Money, error) {
	d, err := roundDecimal(m.Amount(), scale, mode)
	if err != nil {
		return Money{}, fmt.Errorf("rounding [%v] to %v digit(s): %w", m, scale, err)
	}
	return newMoney(d, m.Currency()), nil
}

// RoundToCurr returns the amount rounded to the precision of its currency
// using the rounding mode of its currency.
// See also methods [Money.Round], [Currency.RoundingPrecision], [Currency.RoundingMode].
func (m Money) RoundToCurr() (Money, error) {
	c := m.Currency()
	return m.Round(c.RoundingPrecision(), c.RoundingMode())
}

// SameCurr returns true if both amounts are in the same currency.
func (m Money) SameCurr(n Money) bool {
	return m.Currency().SameCurr(n.Currency())
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, such as "USD 1.50".
// All digits of the amount are written, including trailing zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Currency().String() + " " + formatDecimal(m.Amount())
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.678   | Currency and amount        |
//	| %q     | "USD 5.678" | Quoted currency and amount |
//	| %f     | 5.678       | Amount                     |
//	| %d     | 567.8       | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// Precision is only supported for the %f verb, the amount is then rounded
// using [RoundHalfEven].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = m.String()
	case 'q', 'Q':
		s = `"` + m.String() + `"`
	case 'f', 'F':
		d := m.Amount()
		if p, ok := state.Precision(); ok {
			// Cannot fail: the mode is valid and the precision is not negative.
			d, _ = roundDecimal(d, p, RoundHalfEven)
		}
		s = formatDecimal(d)
	case 'd', 'D':
		s = formatDecimal(m.MinorAmount())
	case 'c', 'C':
		s = m.Currency().String()
	default:
		s = m.String()
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(s) {
		pad := make([]byte, w-len(s))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			s += string(pad)
		} else {
			s = string(pad) + s
		}
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(s))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(money.Money="))
		state.Write([]byte(s))
		state.Write([]byte(")"))
	}
}
