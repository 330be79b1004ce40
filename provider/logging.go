package provider

import (
	"context"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/exactmoney/money"
)

// LoggingProvider logs every lookup made through another provider:
// successful ones at debug level, failed ones at warn level.
type LoggingProvider struct {
	provider money.ExchangeRateProvider
	logger   *zap.Logger
}

// NewLoggingProvider returns a provider logging the lookups of p.
// A nil logger discards all entries.
func NewLoggingProvider(p money.ExchangeRateProvider, logger *zap.Logger) *LoggingProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{provider: p, logger: logger}
}

// ExchangeRate implements [money.ExchangeRateProvider].
func (p *LoggingProvider) ExchangeRate(ctx context.Context, source, target *money.Currency) (*big.Rat, error) {
	start := time.Now()
	r, err := p.provider.ExchangeRate(ctx, source, target)
	fields := []zap.Field{
		zap.Int64("source_id", source.ID()),
		zap.String("source", source.Code()),
		zap.Int64("target_id", target.ID()),
		zap.String("target", target.Code()),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		p.logger.Warn("exchange rate unavailable", append(fields, zap.Error(err))...)
		return nil, err
	}
	if r != nil {
		fields = append(fields, zap.String("rate", r.RatString()))
	}
	p.logger.Debug("exchange rate", fields...)
	return r, nil
}
