package money

import (
	"context"
	"math/big"
)

// ExchangeRateProvider supplies exchange rates between currencies.
// A rate is the number of units of the target currency obtained for one unit
// of the source currency.
//
// ExchangeRate returns an error if the rate is not available. Implementations
// should return a [*CurrencyConversionError]; [Converter] wraps any other
// error into one.
type ExchangeRateProvider interface {
	ExchangeRate(ctx context.Context, source, target *Currency) (*big.Rat, error)
}

// ExchangeRateProviderFunc adapts an ordinary function to the
// [ExchangeRateProvider] interface.
type ExchangeRateProviderFunc func(ctx context.Context, source, target *Currency) (*big.Rat, error)

// ExchangeRate calls f(ctx, source, target).
func (f ExchangeRateProviderFunc) ExchangeRate(ctx context.Context, source, target *Currency) (*big.Rat, error) {
	return f(ctx, source, target)
}

// CurrencyRepository loads and stores currencies.
//
// GetByID returns [ErrCurrencyNotFound] if there is no currency with the given id.
// ByCode returns every currency with the given 3-letter code, possibly none.
// Save returns a [*CurrencyRepositorySaveError] on failure.
type CurrencyRepository interface {
	GetByID(ctx context.Context, id int64) (*Currency, error)
	ByCode(ctx context.Context, code string) ([]*Currency, error)
	Save(ctx context.Context, curr *Currency) error
}
