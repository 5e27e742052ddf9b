package cpmm

import (
	"errors"
	"math"
	"testing"
)

func TestNewPoolStateReserves(t *testing.T) {
	pool, err := NewPoolState(100, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := pool.BaseReserves(); got != 50 {
		t.Fatalf("base reserves mismatch: got %g want 50", got)
	}
	if got := pool.QuoteReserves(); got != 200 {
		t.Fatalf("quote reserves mismatch: got %g want 200", got)
	}
	if got := pool.Invariant(); got != 10000 {
		t.Fatalf("invariant mismatch: got %g want 10000", got)
	}
}

func TestNewPoolStateRejectsNonPositive(t *testing.T) {
	cases := []struct {
		name      string
		liquidity float64
		price     float64
		want      error
	}{
		{"zero liquidity", 0, 1, ErrNonPositiveLiquidity},
		{"negative liquidity", -5, 1, ErrNonPositiveLiquidity},
		{"nan liquidity", math.NaN(), 1, ErrNonPositiveLiquidity},
		{"zero price", 1000, 0, ErrNonPositivePrice},
		{"negative price", 1000, -0.5, ErrNonPositivePrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPoolState(tc.liquidity, tc.price); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConstantProductInvariant(t *testing.T) {
	cases := []struct {
		liquidity float64
		price     float64
	}{
		{1, 1},
		{1000, 1.1},
		{123456.789, 0.000321},
		{0.5, 98765.4321},
		{1e9, 1e-6},
	}

	for _, tc := range cases {
		pool, err := NewPoolState(tc.liquidity, tc.price)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		product := pool.BaseReserves() * pool.QuoteReserves()
		if rel := math.Abs(product-pool.Invariant()) / pool.Invariant(); rel > 1e-10 {
			t.Fatalf("constant product violated for L=%g P=%g: product=%g invariant=%g",
				tc.liquidity, tc.price, product, pool.Invariant())
		}

		derived := pool.QuoteReserves() / pool.BaseReserves()
		if rel := math.Abs(derived-tc.price) / tc.price; rel > 1e-10 {
			t.Fatalf("reserve-derived price mismatch for L=%g P=%g: got %g",
				tc.liquidity, tc.price, derived)
		}
	}
}
