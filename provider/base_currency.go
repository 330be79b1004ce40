package provider

import (
	"context"
	"errors"
	"math/big"

	"github.com/exactmoney/money"
)

// BaseCurrencyProvider derives the rate of any currency pair from rates
// quoted against a single base currency, such as the ones published by
// a central bank.
//
// With base currency B and an underlying provider P:
//
//	B -> T = P(B, T)
//	S -> B = 1 / P(B, S)
//	S -> T = P(B, T) / P(B, S)
//	S -> S = 1
//
// Rates are computed exactly, as rational numbers.
type BaseCurrencyProvider struct {
	provider money.ExchangeRateProvider
	base     *money.Currency
}

// NewBaseCurrencyProvider returns a provider deriving cross rates from rates
// quoted by p against base.
func NewBaseCurrencyProvider(p money.ExchangeRateProvider, base *money.Currency) *BaseCurrencyProvider {
	return &BaseCurrencyProvider{provider: p, base: base}
}

// ExchangeRate implements [money.ExchangeRateProvider].
func (p *BaseCurrencyProvider) ExchangeRate(ctx context.Context, source, target *money.Currency) (*big.Rat, error) {
	if source.SameCurr(target) {
		return big.NewRat(1, 1), nil
	}
	if source.SameCurr(p.base) {
		return p.provider.ExchangeRate(ctx, p.base, target)
	}
	sr, err := p.provider.ExchangeRate(ctx, p.base, source)
	if err != nil {
		return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: err}
	}
	if sr == nil || sr.Sign() == 0 {
		return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: errors.New("zero base rate")}
	}
	if target.SameCurr(p.base) {
		return new(big.Rat).Inv(sr), nil
	}
	tr, err := p.provider.ExchangeRate(ctx, p.base, target)
	if err != nil {
		return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: err}
	}
	if tr == nil {
		return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: errors.New("missing base rate")}
	}
	return new(big.Rat).Quo(tr, sr), nil
}
