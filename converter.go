package money

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// Converter converts amounts between currencies using exchange rates from
// an [ExchangeRateProvider].
// Converter is safe for concurrent use if its provider is.
type Converter struct {
	provider ExchangeRateProvider
}

// NewConverter returns a converter backed by the given provider.
func NewConverter(provider ExchangeRateProvider) *Converter {
	return &Converter{provider: provider}
}

// Convert returns the amount converted to the target currency.
// The conversion is exact: the result is not rounded to the precision of the
// target currency. See also methods [Converter.ConvertAndRound] and [Money.ConvertedTo].
//
// Convert returns an error if:
//   - the provider cannot supply a rate ([*CurrencyConversionError]);
//   - the converted amount has no finite decimal expansion ([ErrRoundingRequired]).
func (c *Converter) Convert(ctx context.Context, m Money, target *Currency) (Money, error) {
	rate, err := c.rate(ctx, m.Currency(), target)
	if err != nil {
		return Money{}, err
	}
	return m.ConvertedTo(target, rate)
}

// ConvertAndRound returns the amount converted to the target currency and
// rounded to its precision using the given mode.
// The exact product is rounded once, so rates without a finite decimal
// expansion, such as 10/9, are supported.
//
// ConvertAndRound returns an error if:
//   - the provider cannot supply a rate ([*CurrencyConversionError]);
//   - the mode is not valid ([ErrInvalidArgument]);
//   - the mode is [RoundUnnecessary] and digits would be discarded ([ErrRoundingRequired]).
func (c *Converter) ConvertAndRound(ctx context.Context, m Money, target *Currency, mode RoundingMode) (Money, error) {
	rate, err := c.rate(ctx, m.Currency(), target)
	if err != nil {
		return Money{}, err
	}
	r := new(big.Rat).Mul(m.Amount().Rat(), rate)
	d, err := roundRat(r, target.RoundingPrecision(), mode)
	if err != nil {
		return Money{}, fmt.Errorf("converting [%v] to %v at rate %v: %w", m, target, rate.RatString(), err)
	}
	return newMoney(d, target), nil
}

func (c *Converter) rate(ctx context.Context, source, target *Currency) (*big.Rat, error) {
	rate, err := c.provider.ExchangeRate(ctx, source, target)
	if err != nil {
		var cerr *CurrencyConversionError
		if errors.As(err, &cerr) {
			return nil, err
		}
		return nil, &CurrencyConversionError{Source: source, Target: target, Err: err}
	}
	if rate == nil {
		return nil, &CurrencyConversionError{Source: source, Target: target, Err: errors.New("provider returned no rate")}
	}
	return rate, nil
}
