// Package memory provides an in-memory currency repository.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/exactmoney/money"
)

// Repository is a [money.CurrencyRepository] that keeps currencies in memory.
// Currencies are copied on save and on load, so callers never share
// the stored records.
// Repository is safe for concurrent use by multiple goroutines.
type Repository struct {
	mu   sync.RWMutex
	byID map[int64]*money.Currency
}

var _ money.CurrencyRepository = (*Repository)(nil)

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{byID: make(map[int64]*money.Currency)}
}

// GetByID returns a copy of the currency with the given id, or
// [money.ErrCurrencyNotFound].
func (r *Repository) GetByID(ctx context.Context, id int64) (*money.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("currency %v: %w", id, money.ErrCurrencyNotFound)
	}
	return c.Clone(), nil
}

// ByCode returns copies of all currencies with the given code, ordered by id.
// The code is matched case-insensitively.
func (r *Repository) ByCode(ctx context.Context, code string) ([]*money.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	code = strings.ToUpper(code)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []*money.Currency
	for _, c := range r.byID {
		if c.Code() == code {
			res = append(res, c.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID() < res[j].ID() })
	return res, nil
}

// Save stores a copy of the currency, replacing any currency with the same id.
// It returns a [*money.CurrencyRepositorySaveError] if the currency is nil or
// has no valid id.
func (r *Repository) Save(ctx context.Context, curr *money.Currency) error {
	if err := ctx.Err(); err != nil {
		return &money.CurrencyRepositorySaveError{Repository: r, Currency: curr, Err: err}
	}
	if curr == nil || curr.ID() <= 0 {
		return &money.CurrencyRepositorySaveError{
			Repository: r,
			Currency:   curr,
			Err:        fmt.Errorf("%w: currency must have a positive id", money.ErrInvalidArgument),
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[curr.ID()] = curr.Clone()
	return nil
}

// Len returns the number of stored currencies.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
