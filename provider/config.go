package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/exactmoney/money"
)

// RateTable is the YAML document read by [LoadRates]:
//
//	rates:
//	  - source: 1     # currency id
//	    target: 2     # currency id
//	    rate: "0.9"   # units of target per unit of source
//
// Rates are read as text, so they are never rounded through a float.
// Rational notation such as "1/3" is accepted.
type RateTable struct {
	Rates []RateEntry `yaml:"rates"`
}

// RateEntry is a single rate of a [RateTable].
type RateEntry struct {
	Source int64  `yaml:"source"`
	Target int64  `yaml:"target"`
	Rate   string `yaml:"rate"`
}

// LoadRates reads a [RateTable] and returns a provider holding its rates.
// Currencies are resolved by id through repo.
//
// LoadRates returns an error if the document is malformed, a currency cannot be
// found, a rate is missing, malformed or not positive, or a currency pair is
// listed twice.
func LoadRates(ctx context.Context, r io.Reader, repo money.CurrencyRepository) (*ConfigurableProvider, error) {
	var table RateTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing rate table: %w", err)
	}
	p := NewConfigurableProvider()
	seen := make(map[[2]int64]int, len(table.Rates))
	for i, e := range table.Rates {
		if j, ok := seen[[2]int64{e.Source, e.Target}]; ok {
			return nil, fmt.Errorf("rate #%d: %w: duplicates rate #%d", i, money.ErrInvalidArgument, j)
		}
		seen[[2]int64{e.Source, e.Target}] = i
		if e.Rate == "" {
			return nil, fmt.Errorf("rate #%d: %w: missing rate", i, money.ErrNumberFormat)
		}
		source, err := repo.GetByID(ctx, e.Source)
		if err != nil {
			return nil, fmt.Errorf("rate #%d: source currency: %w", i, err)
		}
		target, err := repo.GetByID(ctx, e.Target)
		if err != nil {
			return nil, fmt.Errorf("rate #%d: target currency: %w", i, err)
		}
		if err := p.SetExchangeRate(source, target, e.Rate); err != nil {
			return nil, fmt.Errorf("rate #%d: %w", i, err)
		}
	}
	return p, nil
}

// LoadRatesFile is like [LoadRates] but reads the table from a file.
func LoadRatesFile(ctx context.Context, path string, repo money.CurrencyRepository) (*ConfigurableProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table %s: %w", path, err)
	}
	defer f.Close()
	p, err := LoadRates(ctx, f, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table %s: %w", path, err)
	}
	return p, nil
}
