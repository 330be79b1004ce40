/*
Package money implements exact monetary values in application-defined currencies.
It combines the arbitrary-precision decimals of the [decimal] package with
[math/big.Rat] rationals, so that no operation ever rounds silently.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Currencies identified by id, with a rounding policy and localized labels
  - Exact arithmetic and comparison, guarded against mixing currencies
  - Explicit rounding in accordance with the currency's policy
  - Conversion of monetary values using pluggable exchange rate providers

# Representation

The package consists of two main types: Money and Currency.
Money is a decimal.Decimal amount of arbitrary scale paired with a reference
to a Currency.
Currency holds an id, a 3-letter code, a [RoundingMode], a rounding precision
(the number of digits of its minor unit) and localized titles and symbols.
Currencies are compared by id only.

# Operations

Additions, subtractions and conversions promote their operands to rationals,
compute the exact result and demote it back to the decimal with the smallest
scale that represents it.
When the result has no finite decimal expansion, for example when an operand
is the rational "1/3", the operation fails with [ErrRoundingRequired] instead
of rounding.

Operands are either monetary values, which must be in the same currency as the
receiver, or raw numbers, which are taken to be in the receiver's currency.
See [NewDecimal] for the supported raw number types.

# Rounding

Amounts keep every digit they are given or computed with.
Rounding only happens on request, using [Money.Round] or [Money.RoundToCurr].

# Errors

Errors are returned, never swallowed, and can be inspected with [errors.Is]
and [errors.As]: [ErrNumberFormat], [ErrRoundingRequired], [ErrInvalidArgument],
[*CurrencyMismatchError], [*CurrencyConversionError] and
[*CurrencyRepositorySaveError].
Functions prefixed with Must panic instead and are meant for initialization.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money
