package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exactmoney/money"
	"github.com/exactmoney/money/memory"
)

func TestRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	usd := money.MustNewCurrency(1, "USD", money.RoundHalfUp, 2)
	usd.SetTitle(money.NewExpression("US Dollar", "en", ""))

	require.NoError(t, repo.Save(ctx, usd))
	assert.Equal(t, 1, repo.Len())

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Code())
	assert.Equal(t, money.RoundHalfUp, got.RoundingMode())
	assert.Equal(t, 2, got.RoundingPrecision())
	title, ok := got.Title("en", "")
	assert.True(t, ok)
	assert.Equal(t, "US Dollar", title.Value())
	assert.NotSame(t, usd, got, "repository must not hand out the saved pointer")
}

func TestRepository_Isolation(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	usd := money.MustNewCurrency(1, "USD", money.RoundHalfUp, 2)
	require.NoError(t, repo.Save(ctx, usd))

	// Changes after saving are not visible
	require.NoError(t, usd.SetRoundingPrecision(4))
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.RoundingPrecision())

	// Changes to a loaded currency are not visible either
	require.NoError(t, got.SetCode("USX"))
	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "USD", again.Code())
}

func TestRepository_Replace(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	require.NoError(t, repo.Save(ctx, money.MustNewCurrency(1, "USD", money.RoundHalfUp, 2)))
	require.NoError(t, repo.Save(ctx, money.MustNewCurrency(1, "USD", money.RoundDown, 3)))

	assert.Equal(t, 1, repo.Len())
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, money.RoundDown, got.RoundingMode())
	assert.Equal(t, 3, got.RoundingPrecision())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := memory.NewRepository()
	got, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, money.ErrCurrencyNotFound)
}

func TestRepository_ByCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	for _, c := range []*money.Currency{
		money.MustNewCurrency(7, "IRR", money.RoundDown, 0),
		money.MustNewCurrency(3, "IRR", money.RoundHalfUp, 2),
		money.MustNewCurrency(5, "USD", money.RoundHalfUp, 2),
	} {
		require.NoError(t, repo.Save(ctx, c))
	}

	got, err := repo.ByCode(ctx, "irr")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID())
	assert.Equal(t, int64(7), got[1].ID())

	got, err = repo.ByCode(ctx, "EUR")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_Save_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	err := repo.Save(ctx, nil)
	var serr *money.CurrencyRepositorySaveError
	require.ErrorAs(t, err, &serr)
	assert.Same(t, repo, serr.Repository)
	assert.Nil(t, serr.Currency)
	assert.ErrorIs(t, err, money.ErrCurrencySave)
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	// The zero value of Currency has no id
	err = repo.Save(ctx, &money.Currency{})
	assert.ErrorIs(t, err, money.ErrCurrencySave)
	assert.Equal(t, 0, repo.Len())
}

func TestRepository_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := memory.NewRepository()
	usd := money.MustNewCurrency(1, "USD", money.RoundHalfUp, 2)

	err := repo.Save(ctx, usd)
	assert.ErrorIs(t, err, money.ErrCurrencySave)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.ByCode(ctx, "USD")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			c := money.MustNewCurrency(id, "CUR", money.RoundHalfEven, 2)
			assert.NoError(t, repo.Save(ctx, c))
			_, err := repo.GetByID(ctx, id)
			assert.NoError(t, err)
			_, err = repo.ByCode(ctx, "CUR")
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, 50, repo.Len())
}
