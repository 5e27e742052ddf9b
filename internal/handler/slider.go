package handler

import (
	"math"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"poolcalc/internal/cpmm"
	"poolcalc/internal/service"
)

type SliderHandler struct {
	BaseHandler
	service *service.SliderService
}

func NewSliderHandler(logger *zap.Logger, svc *service.SliderService) *SliderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SliderHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type SliderRequest struct {
	Direction   string `query:"direction" json:"direction"`
	Value       string `query:"value" json:"value"`
	CenterPrice string `query:"center_price" json:"center_price"`
	Decades     string `query:"decades" json:"decades"`
}

type SliderResponse struct {
	Direction   string  `json:"direction"`
	Value       float64 `json:"value"`
	CenterPrice float64 `json:"center_price"`
	Decades     float64 `json:"decades"`
	Result      float64 `json:"result"`
	Display     string  `json:"display"`
}

const (
	directionToPrice  = "to_price"
	directionToSlider = "to_slider"
)

func (h *SliderHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req SliderRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", zap.Error(err))
			return ErrInvalidQueryParameters
		}

		value, err := parseFloatField("value", req.Value)
		if err != nil {
			return err
		}
		centerPrice, err := parseFloatField("center_price", req.CenterPrice)
		if err != nil {
			return err
		}
		decades, err := parseFloatField("decades", req.Decades)
		if err != nil {
			return err
		}
		if decades <= 0 {
			return ErrDecadesNotPositive
		}

		var result float64
		switch req.Direction {
		case directionToPrice:
			result = h.service.ToPrice(value, centerPrice, decades)
		case directionToSlider:
			result = h.service.ToSlider(value, centerPrice, decades)
		default:
			return ErrUnknownDirection
		}
		if math.IsNaN(result) || math.IsInf(result, 0) {
			return ErrResultNotFinite
		}

		return c.JSON(SliderResponse{
			Direction:   req.Direction,
			Value:       value,
			CenterPrice: centerPrice,
			Decades:     decades,
			Result:      result,
			Display:     cpmm.FormatNumber(result),
		})
	}
}
