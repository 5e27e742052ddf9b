// Package cpmm implements the constant-product market-maker pricing model:
// reserves x (base) and y (quote) satisfy x*y = L^2, with spot price P = y/x.
package cpmm

import (
	"fmt"
	"math"
)

// PoolState is one snapshot of a pool's economic state. It is a pure value:
// reserves are derived from liquidity and price, never stored.
type PoolState struct {
	liquidity float64
	price     float64
}

// NewPoolState builds a PoolState from liquidity and quote-per-base price.
// Both must be strictly positive.
func NewPoolState(liquidity, price float64) (PoolState, error) {
	if !(liquidity > 0) {
		return PoolState{}, fmt.Errorf("%w: got %g", ErrNonPositiveLiquidity, liquidity)
	}
	if !(price > 0) {
		return PoolState{}, fmt.Errorf("%w: got %g", ErrNonPositivePrice, price)
	}
	return PoolState{liquidity: liquidity, price: price}, nil
}

// Liquidity returns the pool's liquidity parameter L.
func (p PoolState) Liquidity() float64 {
	return p.liquidity
}

// Price returns the quote-per-base spot price.
func (p PoolState) Price() float64 {
	return p.price
}

// BaseReserves returns x = L / sqrt(P).
func (p PoolState) BaseReserves() float64 {
	return p.liquidity / math.Sqrt(p.price)
}

// QuoteReserves returns y = L * sqrt(P).
func (p PoolState) QuoteReserves() float64 {
	return p.liquidity * math.Sqrt(p.price)
}

// Invariant returns k = L^2, which equals BaseReserves()*QuoteReserves()
// up to floating-point rounding.
func (p PoolState) Invariant() float64 {
	return p.liquidity * p.liquidity
}
