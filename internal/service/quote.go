package service

import (
	"time"

	"go.uber.org/zap"

	"poolcalc/internal/model"
	"poolcalc/internal/session"
)

// QuoteService computes trade quotes from explicit numeric inputs. It is
// stateless: every call builds a fresh session, so concurrent requests never
// share mutable state.
type QuoteService struct {
	BaseService
}

// QuoteParams are the calculator inputs for one quote. FeePercent is the
// human-facing percentage in [0, 100), not a fraction.
type QuoteParams struct {
	Liquidity    float64
	InitialPrice float64
	FinalPrice   float64
	FeePercent   float64
}

// NewQuoteService constructs a QuoteService using the provided logger.
func NewQuoteService(logger *zap.Logger) *QuoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteService{BaseService: BaseService{logger: logger}}
}

// Quote validates the inputs through a session and returns the full quote
// record. Validation errors surface unchanged so callers can map them.
func (s *QuoteService) Quote(params QuoteParams) (model.QuoteRecord, error) {
	sess := session.NewSession()
	if err := sess.SetInitialLiquidity(params.Liquidity); err != nil {
		return model.QuoteRecord{}, err
	}
	if err := sess.SetInitialPrice(params.InitialPrice); err != nil {
		return model.QuoteRecord{}, err
	}
	if err := sess.SetFinalPrice(params.FinalPrice); err != nil {
		return model.QuoteRecord{}, err
	}
	if err := sess.SetFeePercent(params.FeePercent); err != nil {
		return model.QuoteRecord{}, err
	}

	snap, err := sess.Recompute()
	if err != nil {
		return model.QuoteRecord{}, err
	}

	s.logger.Debug("quote computed",
		zap.Float64("liquidity", params.Liquidity),
		zap.Float64("initial_price", params.InitialPrice),
		zap.Float64("final_price", params.FinalPrice),
		zap.Float64("fee_percent", params.FeePercent),
		zap.Float64("base_wallet_delta", snap.Result.BaseWalletDelta),
		zap.Float64("quote_wallet_delta", snap.Result.QuoteWalletDelta),
	)

	return model.QuoteRecord{
		Liquidity:    params.Liquidity,
		InitialPrice: params.InitialPrice,
		FinalPrice:   params.FinalPrice,
		FeePercent:   params.FeePercent,

		InitialBaseReserves:  snap.Initial.BaseReserves(),
		InitialQuoteReserves: snap.Initial.QuoteReserves(),
		FinalBaseReserves:    snap.Final.BaseReserves(),
		FinalQuoteReserves:   snap.Final.QuoteReserves(),
		Invariant:            snap.Initial.Invariant(),

		PriceDelta:        snap.Result.PriceDelta,
		BaseWalletDelta:   snap.Result.BaseWalletDelta,
		QuoteWalletDelta:  snap.Result.QuoteWalletDelta,
		BaseFeeCollected:  snap.Result.BaseFeeCollected,
		QuoteFeeCollected: snap.Result.QuoteFeeCollected,

		ComputedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
