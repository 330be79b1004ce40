package provider

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/exactmoney/money"
)

// mockProvider is a [money.ExchangeRateProvider] driven by expectations.
type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) ExchangeRate(ctx context.Context, source, target *money.Currency) (*big.Rat, error) {
	args := m.Called(ctx, source, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Rat), args.Error(1)
}
