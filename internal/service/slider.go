package service

import (
	"go.uber.org/zap"

	"poolcalc/internal/cpmm"
)

// SliderService converts between slider coordinates and prices on the
// logarithmic axis.
type SliderService struct {
	BaseService
}

// NewSliderService constructs a SliderService using the provided logger.
func NewSliderService(logger *zap.Logger) *SliderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SliderService{BaseService: BaseService{logger: logger}}
}

// ToPrice maps a slider coordinate to a price. The mapping is total, so any
// coordinate is accepted, including out-of-range ones.
func (s *SliderService) ToPrice(value, centerPrice, decades float64) float64 {
	price := cpmm.SliderToPrice(value, centerPrice, decades)
	s.logger.Debug("slider to price",
		zap.Float64("value", value),
		zap.Float64("center_price", centerPrice),
		zap.Float64("decades", decades),
		zap.Float64("price", price),
	)
	return price
}

// ToSlider maps a price to a slider coordinate. Non-positive price or center
// yields the defensive midpoint 0.5 rather than an error.
func (s *SliderService) ToSlider(price, centerPrice, decades float64) float64 {
	value := cpmm.PriceToSlider(price, centerPrice, decades)
	s.logger.Debug("price to slider",
		zap.Float64("price", price),
		zap.Float64("center_price", centerPrice),
		zap.Float64("decades", decades),
		zap.Float64("value", value),
	)
	return value
}
