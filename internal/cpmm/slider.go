package cpmm

import "math"

// SliderToPrice maps a slider coordinate onto a logarithmic price axis
// centered on centerPrice. The full 0..1 sweep spans 2*decades orders of
// magnitude, with 0.5 landing exactly on centerPrice. The mapping is total:
// values outside [0, 1] extrapolate instead of failing.
func SliderToPrice(s, centerPrice, decades float64) float64 {
	exponent := (s - 0.5) * 2 * decades
	return centerPrice * math.Pow(10, exponent)
}

// PriceToSlider is the inverse of SliderToPrice. When price or centerPrice
// is non-positive the mapping has no inverse, so the slider midpoint 0.5 is
// returned rather than an error; interactive editing should not be
// interrupted by a transient bad value.
func PriceToSlider(price, centerPrice, decades float64) float64 {
	if price <= 0 || centerPrice <= 0 {
		return 0.5
	}
	return 0.5 + math.Log10(price/centerPrice)/(2*decades)
}
