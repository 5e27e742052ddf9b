package cpmm

import (
	"math"
	"testing"
)

func TestSliderCenterFixedPoint(t *testing.T) {
	cases := []struct {
		center  float64
		decades float64
	}{
		{1.0, 3.0},
		{0.05, 1.0},
		{1234.5, 6.0},
	}

	for _, tc := range cases {
		if got := SliderToPrice(0.5, tc.center, tc.decades); got != tc.center {
			t.Fatalf("center fixed point violated for c=%g d=%g: got %g", tc.center, tc.decades, got)
		}
	}
}

func TestSliderEndpoints(t *testing.T) {
	// Full sweep spans 2*decades orders of magnitude around the center.
	if got := SliderToPrice(1.0, 1.0, 3.0); math.Abs(got-1000) > 1e-9 {
		t.Fatalf("right endpoint mismatch: got %g want 1000", got)
	}
	if got := SliderToPrice(0.0, 1.0, 3.0); math.Abs(got-0.001) > 1e-15 {
		t.Fatalf("left endpoint mismatch: got %g want 0.001", got)
	}
}

func TestSliderExtrapolates(t *testing.T) {
	// The mapping is total: out-of-range slider values extrapolate.
	if got := SliderToPrice(1.5, 1.0, 3.0); math.Abs(got-1e6)/1e6 > 1e-9 {
		t.Fatalf("extrapolation mismatch: got %g want 1e6", got)
	}
}

func TestSliderRoundTrip(t *testing.T) {
	cases := []struct {
		price   float64
		center  float64
		decades float64
	}{
		{1.0, 1.0, 3.0},
		{0.001, 1.0, 3.0},
		{999.0, 1.0, 3.0},
		{42.0, 10.0, 2.0},
		{0.00037, 0.01, 4.0},
		{77777.7, 500.0, 5.0},
	}

	for _, tc := range cases {
		s := PriceToSlider(tc.price, tc.center, tc.decades)
		back := SliderToPrice(s, tc.center, tc.decades)
		if rel := math.Abs(back-tc.price) / tc.price; rel > 0.001 {
			t.Fatalf("round trip failed for price=%g c=%g d=%g: got %g (rel %g)",
				tc.price, tc.center, tc.decades, back, rel)
		}
	}
}

func TestPriceToSliderDegenerateDefault(t *testing.T) {
	if got := PriceToSlider(-5, 1.0, 3.0); got != 0.5 {
		t.Fatalf("expected 0.5 for negative price, got %g", got)
	}
	if got := PriceToSlider(2.0, -1.0, 3.0); got != 0.5 {
		t.Fatalf("expected 0.5 for negative center, got %g", got)
	}
	if got := PriceToSlider(0, 1.0, 3.0); got != 0.5 {
		t.Fatalf("expected 0.5 for zero price, got %g", got)
	}
}
