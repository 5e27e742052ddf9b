package cpmm

import "fmt"

// TradeResult describes the economic consequence of moving a pool from one
// state to another at a fixed fee rate. Wallet deltas are from the trader's
// perspective: positive means the trader receives, negative means the trader
// pays. Deltas are gross amounts; the fee is reported separately as a
// collected amount routed to the fee sink, not netted out of the deltas.
type TradeResult struct {
	PriceDelta        float64
	BaseWalletDelta   float64
	QuoteWalletDelta  float64
	BaseFeeCollected  float64
	QuoteFeeCollected float64
}

// ComputeTrade derives the trader's wallet deltas and the collected fee for
// a move from initial to final pool state. The fee is charged on the input
// side only, so at most one of the two fee fields is nonzero. feeFraction
// must be in [0, 1).
func ComputeTrade(initial, final PoolState, feeFraction float64) (TradeResult, error) {
	if !(feeFraction >= 0 && feeFraction < 1) {
		return TradeResult{}, fmt.Errorf("%w: got %g", ErrFeeOutOfRange, feeFraction)
	}

	// Whatever leaves the pool enters the wallet, hence the sign flip from
	// pool delta to wallet delta.
	baseGross := -(final.BaseReserves() - initial.BaseReserves())
	quoteGross := -(final.QuoteReserves() - initial.QuoteReserves())

	var baseFee, quoteFee float64
	switch {
	case baseGross < 0:
		// Trader sells base into the pool; fee on the base side.
		baseFee = -baseGross * feeFraction
	case quoteGross < 0:
		// Trader pays quote to buy base; fee on the quote side.
		quoteFee = -quoteGross * feeFraction
	}

	return TradeResult{
		PriceDelta:        final.Price() - initial.Price(),
		BaseWalletDelta:   baseGross,
		QuoteWalletDelta:  quoteGross,
		BaseFeeCollected:  baseFee,
		QuoteFeeCollected: quoteFee,
	}, nil
}
