package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poolcalc/internal/cpmm"
	"poolcalc/internal/session"
)

func TestQuoteServiceQuote(t *testing.T) {
	svc := NewQuoteService(zap.NewNop())

	record, err := svc.Quote(QuoteParams{
		Liquidity:    1000,
		InitialPrice: 1.0,
		FinalPrice:   1.21,
		FeePercent:   0.3,
	})
	require.NoError(t, err)

	require.InDelta(t, 0.21, record.PriceDelta, 1e-12)
	require.Greater(t, record.BaseWalletDelta, 0.0)
	require.Less(t, record.QuoteWalletDelta, 0.0)
	require.Greater(t, record.QuoteFeeCollected, 0.0)
	require.Zero(t, record.BaseFeeCollected)
	require.Equal(t, 1e6, record.Invariant)
	require.NotEmpty(t, record.ComputedAt)

	// Reserve consistency on both sides.
	require.InEpsilon(t, record.Invariant, record.InitialBaseReserves*record.InitialQuoteReserves, 1e-10)
	require.InEpsilon(t, record.Invariant, record.FinalBaseReserves*record.FinalQuoteReserves, 1e-10)
}

func TestQuoteServiceRejectsInvalidInputs(t *testing.T) {
	svc := NewQuoteService(nil)

	cases := []struct {
		name   string
		params QuoteParams
		want   error
	}{
		{"zero liquidity", QuoteParams{0, 1, 1.1, 0.3}, cpmm.ErrNonPositiveLiquidity},
		{"negative initial price", QuoteParams{1000, -1, 1.1, 0.3}, cpmm.ErrNonPositivePrice},
		{"zero final price", QuoteParams{1000, 1, 0, 0.3}, cpmm.ErrNonPositivePrice},
		{"fee at 100", QuoteParams{1000, 1, 1.1, 100}, session.ErrFeePercentOutOfRange},
		{"negative fee", QuoteParams{1000, 1, 1.1, -1}, session.ErrFeePercentOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Quote(tc.params)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSliderServiceRoundTrip(t *testing.T) {
	svc := NewSliderService(nil)

	price := svc.ToPrice(0.75, 1.0, 3.0)
	require.InEpsilon(t, 31.6227766, price, 1e-6)

	back := svc.ToSlider(price, 1.0, 3.0)
	require.InDelta(t, 0.75, back, 1e-12)

	require.Equal(t, 0.5, svc.ToSlider(-5, 1.0, 3.0))
}
