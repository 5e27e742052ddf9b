package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poolcalc/internal/service"
)

func newQuoteApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	h := NewQuoteHandler(logger, service.NewQuoteService(logger))

	app := fiber.New()
	app.Get("/quote", h.Handle())
	return app
}

func TestQuoteHandlerOK(t *testing.T) {
	app := newQuoteApp(t)

	req := httptest.NewRequest(http.MethodGet,
		"/quote?liquidity=1000&initial_price=1.0&final_price=1.21&fee_percent=0.3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Greater(t, body.BaseWalletDelta, 0.0)
	require.Less(t, body.QuoteWalletDelta, 0.0)
	require.Greater(t, body.QuoteFeeCollected, 0.0)
	require.Zero(t, body.BaseFeeCollected)
	require.Equal(t, "0.210000", body.Display["price_delta"])
	require.NotEmpty(t, body.Display["quote_wallet_delta"])
}

func TestQuoteHandlerFeeDefaultsToZero(t *testing.T) {
	app := newQuoteApp(t)

	req := httptest.NewRequest(http.MethodGet,
		"/quote?liquidity=1000&initial_price=1.0&final_price=0.81", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Zero(t, body.BaseFeeCollected)
	require.Zero(t, body.QuoteFeeCollected)
	require.Less(t, body.BaseWalletDelta, 0.0)
	require.Greater(t, body.QuoteWalletDelta, 0.0)
}

func TestQuoteHandlerValidation(t *testing.T) {
	app := newQuoteApp(t)

	cases := []struct {
		name  string
		query string
	}{
		{"missing params", ""},
		{"missing final price", "?liquidity=1000&initial_price=1.0"},
		{"non-numeric liquidity", "?liquidity=abc&initial_price=1.0&final_price=1.1"},
		{"infinite price", "?liquidity=1000&initial_price=Inf&final_price=1.1"},
		{"zero liquidity", "?liquidity=0&initial_price=1.0&final_price=1.1"},
		{"negative price", "?liquidity=1000&initial_price=-1&final_price=1.1"},
		{"fee at 100", "?liquidity=1000&initial_price=1.0&final_price=1.1&fee_percent=100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/quote"+tc.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func newSliderApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	h := NewSliderHandler(logger, service.NewSliderService(logger))

	app := fiber.New()
	app.Get("/slider", h.Handle())
	return app
}

func TestSliderHandlerToPrice(t *testing.T) {
	app := newSliderApp(t)

	req := httptest.NewRequest(http.MethodGet,
		"/slider?direction=to_price&value=0.5&center_price=2.5&decades=3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body SliderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2.5, body.Result)
	require.Equal(t, "2.500000", body.Display)
}

func TestSliderHandlerToSliderDegenerate(t *testing.T) {
	app := newSliderApp(t)

	// Non-positive price maps to the defensive midpoint, not an error.
	req := httptest.NewRequest(http.MethodGet,
		"/slider?direction=to_slider&value=-5&center_price=1.0&decades=3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body SliderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 0.5, body.Result)
}

func TestSliderHandlerValidation(t *testing.T) {
	app := newSliderApp(t)

	cases := []struct {
		name  string
		query string
	}{
		{"missing value", "?direction=to_price&center_price=1&decades=3"},
		{"unknown direction", "?direction=sideways&value=0.5&center_price=1&decades=3"},
		{"zero decades", "?direction=to_price&value=0.5&center_price=1&decades=0"},
		{"overflowing exponent", "?direction=to_price&value=1e9&center_price=1&decades=3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/slider"+tc.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
