package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// account is a monetary value that is not a Money.
type account struct {
	balance decimal.Decimal
	curr    *Currency
}

func (a account) Amount() decimal.Decimal {
	return a.balance
}

func (a account) Currency() *Currency {
	return a.curr
}

func TestMoney_Sign(t *testing.T) {
	tests := []struct {
		amount    string
		sign      int
		neg, negz bool
		zero      bool
		pos, posz bool
	}{
		{"-1", -1, true, true, false, false, false},
		{"-0.001", -1, true, true, false, false, false},
		{"0", 0, false, true, true, false, true},
		{"0.00", 0, false, true, true, false, true},
		{"2", 1, false, false, false, true, true},
	}
	for _, tt := range tests {
		m := MustOf(tt.amount, usd)
		if got := m.Sign(); got != tt.sign {
			t.Errorf("%v.Sign() = %v, want %v", m, got, tt.sign)
		}
		if got := m.IsNeg(); got != tt.neg {
			t.Errorf("%v.IsNeg() = %v, want %v", m, got, tt.neg)
		}
		if got := m.IsNegOrZero(); got != tt.negz {
			t.Errorf("%v.IsNegOrZero() = %v, want %v", m, got, tt.negz)
		}
		if got := m.IsZero(); got != tt.zero {
			t.Errorf("%v.IsZero() = %v, want %v", m, got, tt.zero)
		}
		if got := m.IsPos(); got != tt.pos {
			t.Errorf("%v.IsPos() = %v, want %v", m, got, tt.pos)
		}
		if got := m.IsPosOrZero(); got != tt.posz {
			t.Errorf("%v.IsPosOrZero() = %v, want %v", m, got, tt.posz)
		}
	}
}

func TestMoney_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			n    any
			want int
		}{
			{"1.5", MustOf("1.50", usd), 0},
			{"1", MustOf("2", usd), -1},
			{"2", MustOf("1.999", usd), 1},
			{"1", "1/3", 1},
			{"0.25", "1/4", 0},
			{"1", 2, -1},
			{"-1", -1.5, 1},
			{"1", MustOf("1", usd.Clone()), 0},
			{"3", account{decimal.New(3, 0), usd}, 0},
			{"3", account{decimal.New(31, -1), usd}, -1},
		}
		for _, tt := range tests {
			m := MustOf(tt.m, usd)
			got, err := m.Cmp(tt.n)
			if err != nil {
				t.Errorf("%v.Cmp(%v) failed: %v", m, tt.n, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Cmp(%v) = %v, want %v", m, tt.n, got, tt.want)
			}

			checks := []struct {
				name string
				f    func(any) (bool, error)
				want bool
			}{
				{"IsEqualTo", m.IsEqualTo, tt.want == 0},
				{"IsLessThan", m.IsLessThan, tt.want < 0},
				{"IsLessThanOrEqualTo", m.IsLessThanOrEqualTo, tt.want <= 0},
				{"IsGreaterThan", m.IsGreaterThan, tt.want > 0},
				{"IsGreaterThanOrEqualTo", m.IsGreaterThanOrEqualTo, tt.want >= 0},
			}
			for _, c := range checks {
				got, err := c.f(tt.n)
				if err != nil {
					t.Errorf("%v.%v(%v) failed: %v", m, c.name, tt.n, err)
					continue
				}
				if got != c.want {
					t.Errorf("%v.%v(%v) = %v, want %v", m, c.name, tt.n, got, c.want)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustOf("1", usd)
		tests := map[string]struct {
			n    any
			want error
		}{
			"money":  {MustOf("1", eur), ErrCurrencyMismatch},
			"value":  {account{decimal.New(1, 0), jpy}, ErrCurrencyMismatch},
			"nil":    {MustOf("1", nil), ErrCurrencyMismatch},
			"format": {"1..0", ErrNumberFormat},
			"type":   {true, ErrNumberFormat},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				fs := map[string]func(any) (bool, error){
					"IsEqualTo":              m.IsEqualTo,
					"IsLessThan":             m.IsLessThan,
					"IsLessThanOrEqualTo":    m.IsLessThanOrEqualTo,
					"IsGreaterThan":          m.IsGreaterThan,
					"IsGreaterThanOrEqualTo": m.IsGreaterThanOrEqualTo,
				}
				if _, err := m.Cmp(tt.n); !errors.Is(err, tt.want) {
					t.Errorf("%v.Cmp(%v) = %v, want %v", m, tt.n, err, tt.want)
				}
				for fn, f := range fs {
					ok, err := f(tt.n)
					if !errors.Is(err, tt.want) {
						t.Errorf("%v.%v(%v) = %v, want %v", m, fn, tt.n, err, tt.want)
					}
					if ok {
						t.Errorf("%v.%v(%v) = true on error", m, fn, tt.n)
					}
				}
			})
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		m := MustOf("1", usd)
		_, err := m.IsGreaterThan(MustOf("1", eur))
		var merr *CurrencyMismatchError
		if !errors.As(err, &merr) {
			t.Fatalf("%v.IsGreaterThan(EUR 1) = %v, want %T", m, err, merr)
		}
		if merr.Expected != usd || merr.Actual != eur {
			t.Errorf("mismatch = (%v, %v), want (%v, %v)", merr.Expected, merr.Actual, usd, eur)
		}
	})
}

func TestAmountOf(t *testing.T) {
	a := account{decimal.RequireFromString("2.50"), usd}
	r, err := amountOf(a, MustOf("0.5", usd))
	if err != nil {
		t.Fatalf("amountOf(%v, USD 0.5) failed: %v", a, err)
	}
	if got := r.RatString(); got != "1/2" {
		t.Errorf("amountOf(%v, USD 0.5) = %v, want 1/2", a, got)
	}
	r, err = amountOf(a, "7/4")
	if err != nil {
		t.Fatalf("amountOf(%v, 7/4) failed: %v", a, err)
	}
	if got := r.RatString(); got != "7/4" {
		t.Errorf("amountOf(%v, 7/4) = %v, want 7/4", a, got)
	}
}
