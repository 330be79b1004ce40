package provider

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/exactmoney/money"
)

// pair identifies a directed currency pair by currency ids.
type pair struct {
	source int64
	target int64
}

func pairOf(source, target *money.Currency) pair {
	return pair{source: source.ID(), target: target.ID()}
}

func (p pair) String() string {
	return fmt.Sprintf("%d/%d", p.source, p.target)
}

// ConfigurableProvider is a table of exchange rates set by the application.
// Rates are directed: a rate from USD to EUR says nothing about EUR to USD.
type ConfigurableProvider struct {
	mu    sync.RWMutex
	rates map[pair]*big.Rat
}

// NewConfigurableProvider returns a provider without any rates.
func NewConfigurableProvider() *ConfigurableProvider {
	return &ConfigurableProvider{rates: make(map[pair]*big.Rat)}
}

// SetExchangeRate sets the rate for converting from source to target,
// replacing a previous one. The rate can be any number supported by
// [money.NewRat].
//
// SetExchangeRate returns an error if the rate is not a valid number or is not positive.
func (p *ConfigurableProvider) SetExchangeRate(source, target *money.Currency, rate any) error {
	r, err := money.NewRat(rate)
	if err != nil {
		return fmt.Errorf("setting rate %v/%v: %w", source, target, err)
	}
	if r.Sign() <= 0 {
		return fmt.Errorf("setting rate %v/%v: %w: rate %v must be positive", source, target, money.ErrInvalidArgument, r.RatString())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rates[pairOf(source, target)] = r
	return nil
}

// ExchangeRate implements [money.ExchangeRateProvider].
// It returns a [*money.CurrencyConversionError] if no rate was set for the pair.
func (p *ConfigurableProvider) ExchangeRate(ctx context.Context, source, target *money.Currency) (*big.Rat, error) {
	if err := ctx.Err(); err != nil {
		return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: err}
	}
	p.mu.RLock()
	r, ok := p.rates[pairOf(source, target)]
	p.mu.RUnlock()
	if !ok {
		return nil, &money.CurrencyConversionError{Source: source, Target: target}
	}
	return new(big.Rat).Set(r), nil
}

// Len returns the number of configured rates.
func (p *ConfigurableProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.rates)
}
