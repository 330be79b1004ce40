package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/exactmoney/money"
)

// CachedProvider remembers the rates returned by another provider.
// Concurrent lookups of the same missing pair share a single call to the
// underlying provider, which is not canceled when one of the callers gives
// up. Failed lookups are not cached.
type CachedProvider struct {
	provider money.ExchangeRateProvider
	cache    *lru.Cache[pair, *big.Rat]
	group    singleflight.Group
}

// NewCachedProvider returns a provider caching up to size rates of p,
// evicting the least recently used ones first.
// It returns an error if size is not positive.
func NewCachedProvider(p money.ExchangeRateProvider, size int) (*CachedProvider, error) {
	cache, err := lru.New[pair, *big.Rat](size)
	if err != nil {
		return nil, fmt.Errorf("creating rate cache: %w", err)
	}
	return &CachedProvider{provider: p, cache: cache}, nil
}

// ExchangeRate implements [money.ExchangeRateProvider].
func (p *CachedProvider) ExchangeRate(ctx context.Context, source, target *money.Currency) (*big.Rat, error) {
	key := pairOf(source, target)
	if r, ok := p.cache.Get(key); ok {
		return new(big.Rat).Set(r), nil
	}
	// The shared lookup outlives any single caller; each caller stops
	// waiting when its own context is done.
	shared := context.WithoutCancel(ctx)
	ch := p.group.DoChan(key.String(), func() (any, error) {
		r, err := p.provider.ExchangeRate(shared, source, target)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: errors.New("provider returned no rate")}
		}
		r = new(big.Rat).Set(r)
		p.cache.Add(key, r)
		return r, nil
	})
	select {
	case <-ctx.Done():
		return nil, &money.CurrencyConversionError{Source: source, Target: target, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return new(big.Rat).Set(res.Val.(*big.Rat)), nil
	}
}

// Invalidate removes all cached rates.
func (p *CachedProvider) Invalidate() {
	p.cache.Purge()
}

// Len returns the number of cached rates.
func (p *CachedProvider) Len() int {
	return p.cache.Len()
}
