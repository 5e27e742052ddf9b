package handler

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"poolcalc/internal/cpmm"
	"poolcalc/internal/model"
	"poolcalc/internal/service"
	"poolcalc/internal/session"
)

type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *zap.Logger, svc *service.QuoteService) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type QuoteRequest struct {
	Liquidity    string `query:"liquidity" json:"liquidity"`
	InitialPrice string `query:"initial_price" json:"initial_price"`
	FinalPrice   string `query:"final_price" json:"final_price"`
	FeePercent   string `query:"fee_percent" json:"fee_percent"`
}

// QuoteResponse carries the raw quote record plus display-formatted strings.
// The display values are lossy and exist only for rendering.
type QuoteResponse struct {
	model.QuoteRecord
	Display map[string]string `json:"display"`
}

func (h *QuoteHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		params, err := h.parseAndValidateRequest(c)
		if err != nil {
			return err
		}

		record, err := h.service.Quote(params)
		if err != nil {
			return h.handleServiceError(err)
		}

		return c.JSON(QuoteResponse{
			QuoteRecord: record,
			Display:     displayFields(record),
		})
	}
}

func (h *QuoteHandler) parseAndValidateRequest(c fiber.Ctx) (service.QuoteParams, error) {
	var req QuoteRequest
	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", zap.Error(err))
		return service.QuoteParams{}, ErrInvalidQueryParameters
	}

	liquidity, err := parseFloatField("liquidity", req.Liquidity)
	if err != nil {
		return service.QuoteParams{}, err
	}
	initialPrice, err := parseFloatField("initial_price", req.InitialPrice)
	if err != nil {
		return service.QuoteParams{}, err
	}
	finalPrice, err := parseFloatField("final_price", req.FinalPrice)
	if err != nil {
		return service.QuoteParams{}, err
	}

	// Fee defaults to zero when omitted.
	feePercent := 0.0
	if req.FeePercent != "" {
		feePercent, err = parseFloatField("fee_percent", req.FeePercent)
		if err != nil {
			return service.QuoteParams{}, err
		}
	}

	return service.QuoteParams{
		Liquidity:    liquidity,
		InitialPrice: initialPrice,
		FinalPrice:   finalPrice,
		FeePercent:   feePercent,
	}, nil
}

func (h *QuoteHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, cpmm.ErrNonPositiveLiquidity):
		return ErrLiquidityNotPositive
	case errors.Is(err, cpmm.ErrNonPositivePrice):
		return ErrPriceNotPositive
	case errors.Is(err, session.ErrFeePercentOutOfRange), errors.Is(err, cpmm.ErrFeeOutOfRange):
		return ErrFeePercentOutOfRange
	default:
		h.logger.Error("quote failed", zap.Error(err))
		return ErrQuoteFailedInternal
	}
}

func parseFloatField(field, raw string) (float64, error) {
	if raw == "" {
		return 0, NewFieldRequired(field)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, NewInvalidNumber(field)
	}
	return value, nil
}

func displayFields(record model.QuoteRecord) map[string]string {
	return map[string]string{
		"initial_base_reserves":  cpmm.FormatNumber(record.InitialBaseReserves),
		"initial_quote_reserves": cpmm.FormatNumber(record.InitialQuoteReserves),
		"final_base_reserves":    cpmm.FormatNumber(record.FinalBaseReserves),
		"final_quote_reserves":   cpmm.FormatNumber(record.FinalQuoteReserves),
		"price_delta":            cpmm.FormatNumber(record.PriceDelta),
		"base_wallet_delta":      cpmm.FormatNumber(record.BaseWalletDelta),
		"quote_wallet_delta":     cpmm.FormatNumber(record.QuoteWalletDelta),
		"base_fee_collected":     cpmm.FormatNumber(record.BaseFeeCollected),
		"quote_fee_collected":    cpmm.FormatNumber(record.QuoteFeeCollected),
	}
}
