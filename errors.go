package money

import (
	"errors"
	"fmt"
)

var (
	// ErrNumberFormat is returned when a value cannot be parsed into an exact number.
	ErrNumberFormat = errors.New("invalid number")

	// ErrRoundingRequired is returned when a result cannot be represented
	// exactly as a decimal and would therefore need rounding.
	ErrRoundingRequired = errors.New("rounding necessary")

	// ErrInvalidArgument is returned when a currency is assigned an invalid
	// identity, code or rounding policy.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCurrencyMismatch is the kind of every [CurrencyMismatchError].
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrCurrencyConversion is the kind of every [CurrencyConversionError].
	ErrCurrencyConversion = errors.New("exchange rate unavailable")

	// ErrCurrencySave is the kind of every [CurrencyRepositorySaveError].
	ErrCurrencySave = errors.New("saving currency")

	// ErrCurrencyNotFound is returned by a [CurrencyRepository] when no currency
	// has the requested id.
	ErrCurrencyNotFound = errors.New("currency not found")
)

// CurrencyMismatchError is returned when two monetary values in different
// currencies are combined or compared.
// Expected is the currency of the receiver, Actual the currency of the operand.
type CurrencyMismatchError struct {
	Expected *Currency
	Actual   *Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %v, got %v", ErrCurrencyMismatch, e.Expected, e.Actual)
}

// Unwrap returns [ErrCurrencyMismatch].
func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// CurrencyConversionError is returned when no exchange rate is available
// for converting from Source to Target.
type CurrencyConversionError struct {
	Source *Currency
	Target *Currency
	Err    error // underlying cause, may be nil
}

func (e *CurrencyConversionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("converting %v to %v: %v", e.Source, e.Target, ErrCurrencyConversion)
	}
	return fmt.Sprintf("converting %v to %v: %v: %v", e.Source, e.Target, ErrCurrencyConversion, e.Err)
}

// Is reports whether target is [ErrCurrencyConversion].
func (e *CurrencyConversionError) Is(target error) bool {
	return target == ErrCurrencyConversion
}

// Unwrap returns the underlying cause.
func (e *CurrencyConversionError) Unwrap() error {
	return e.Err
}

// CurrencyRepositorySaveError is returned when a [CurrencyRepository] fails
// to save a currency.
type CurrencyRepositorySaveError struct {
	Repository CurrencyRepository
	Currency   *Currency
	Err        error // underlying cause, may be nil
}

func (e *CurrencyRepositorySaveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v %v", ErrCurrencySave, e.Currency)
	}
	return fmt.Sprintf("%v %v: %v", ErrCurrencySave, e.Currency, e.Err)
}

// Is reports whether target is [ErrCurrencySave].
func (e *CurrencyRepositorySaveError) Is(target error) bool {
	return target == ErrCurrencySave
}

// Unwrap returns the underlying cause.
func (e *CurrencyRepositorySaveError) Unwrap() error {
	return e.Err
}
