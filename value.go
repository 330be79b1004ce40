package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Value is implemented by monetary values: an exact amount bound to a currency.
// [Money] implements Value.
//
// Wherever an operation accepts an operand of type any, a Value operand must
// be in the same currency as the receiver, while any other operand is taken
// as a raw number already expressed in the receiver's currency.
// See [NewDecimal] for the supported raw number types.
type Value interface {
	Amount() decimal.Decimal
	Currency() *Currency
}

// amountOf resolves the operand of a binary operation on v.
// A Value operand must be in the same currency as v; a raw number is
// accepted as is.
// It is the only place where currencies of operands are checked.
func amountOf(v Value, that any) (*big.Rat, error) {
	if w, ok := that.(Value); ok {
		if !v.Currency().SameCurr(w.Currency()) {
			return nil, &CurrencyMismatchError{Expected: v.Currency(), Actual: w.Currency()}
		}
		return w.Amount().Rat(), nil
	}
	return NewRat(that)
}

// compare returns the sign of v - that.
func compare(v Value, that any) (int, error) {
	r, err := amountOf(v, that)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", v, that, err)
	}
	return v.Amount().Rat().Cmp(r), nil
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.Amount().Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.Sign() == 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.Sign() < 0
}

// IsNegOrZero returns:
//
//	true  if m <= 0
//	false otherwise
func (m Money) IsNegOrZero() bool {
	return m.Sign() <= 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.Sign() > 0
}

// IsPosOrZero returns:
//
//	true  if m >= 0
//	false otherwise
func (m Money) IsPosOrZero() bool {
	return m.Sign() >= 0
}

// Cmp compares m with a monetary value or a raw number and returns:
//
//	-1 if m < that
//	 0 if m = that
//	+1 if m > that
//
// Cmp returns an error if:
//   - that is a [Value] in a different currency ([*CurrencyMismatchError]);
//   - that is not a valid number ([ErrNumberFormat]).
func (m Money) Cmp(that any) (int, error) {
	return compare(m, that)
}

// IsEqualTo returns true if m is numerically equal to that.
// The scale is ignored: USD 1.5 is equal to USD 1.50.
// See [Money.Cmp] for the errors.
func (m Money) IsEqualTo(that any) (bool, error) {
	c, err := compare(m, that)
	return err == nil && c == 0, err
}

// IsLessThan returns true if m < that.
// See [Money.Cmp] for the errors.
func (m Money) IsLessThan(that any) (bool, error) {
	c, err := compare(m, that)
	return err == nil && c < 0, err
}

// IsLessThanOrEqualTo returns true if m <= that.
// See [Money.Cmp] for the errors.
func (m Money) IsLessThanOrEqualTo(that any) (bool, error) {
	c, err := compare(m, that)
	return err == nil && c <= 0, err
}

// IsGreaterThan returns true if m > that.
// See [Money.Cmp] for the errors.
func (m Money) IsGreaterThan(that any) (bool, error) {
	c, err := compare(m, that)
	return err == nil && c > 0, err
}

// IsGreaterThanOrEqualTo returns true if m >= that.
// See [Money.Cmp] for the errors.
func (m Money) IsGreaterThanOrEqualTo(that any) (bool, error) {
	c, err := compare(m, that)
	return err == nil && c >= 0, err
}
