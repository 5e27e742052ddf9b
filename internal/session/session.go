// Package session holds the mutable calculator inputs and ties the pricing
// engine together into a single recompute operation. A Session has one
// logical owner at a time; it does no locking of its own.
package session

import (
	"fmt"

	"poolcalc/internal/cpmm"
)

// Default input values for a fresh calculator session.
const (
	DefaultLiquidity    = 1000.0
	DefaultInitialPrice = 1.0
	DefaultFinalPrice   = 1.1
	DefaultFeePercent   = 0.3
	DefaultCenterPrice  = 1.0
	DefaultDecades      = 3.0
)

// Session is the editable state of one calculator instance. Fields are
// mutated only through the setters, which reject invalid values and keep the
// prior value in place. FinalPrice is canonical; the slider coordinate is
// always derived from it, so price edits and slider edits cannot drift apart.
type Session struct {
	initialLiquidity float64
	initialPrice     float64
	finalPrice       float64
	feePercent       float64
	centerPrice      float64
	decades          float64
}

// Snapshot is the output of one recompute pass: both pool states and the
// trade result between them.
type Snapshot struct {
	Initial cpmm.PoolState
	Final   cpmm.PoolState
	Result  cpmm.TradeResult
}

// NewSession returns a session populated with the documented defaults.
func NewSession() *Session {
	return &Session{
		initialLiquidity: DefaultLiquidity,
		initialPrice:     DefaultInitialPrice,
		finalPrice:       DefaultFinalPrice,
		feePercent:       DefaultFeePercent,
		centerPrice:      DefaultCenterPrice,
		decades:          DefaultDecades,
	}
}

func (s *Session) InitialLiquidity() float64 { return s.initialLiquidity }
func (s *Session) InitialPrice() float64     { return s.initialPrice }
func (s *Session) FinalPrice() float64       { return s.finalPrice }
func (s *Session) FeePercent() float64       { return s.feePercent }
func (s *Session) CenterPrice() float64      { return s.centerPrice }
func (s *Session) Decades() float64          { return s.decades }

// SetInitialLiquidity rejects non-positive values.
func (s *Session) SetInitialLiquidity(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("set liquidity: %w", cpmm.ErrNonPositiveLiquidity)
	}
	s.initialLiquidity = v
	return nil
}

// SetInitialPrice rejects non-positive values.
func (s *Session) SetInitialPrice(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("set initial price: %w", cpmm.ErrNonPositivePrice)
	}
	s.initialPrice = v
	return nil
}

// SetFinalPrice rejects non-positive values.
func (s *Session) SetFinalPrice(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("set final price: %w", cpmm.ErrNonPositivePrice)
	}
	s.finalPrice = v
	return nil
}

// SetFeePercent accepts values in [0, 100).
func (s *Session) SetFeePercent(v float64) error {
	if !(v >= 0 && v < 100) {
		return fmt.Errorf("set fee percent: %w: got %g", ErrFeePercentOutOfRange, v)
	}
	s.feePercent = v
	return nil
}

// SetCenterPrice rejects non-positive values.
func (s *Session) SetCenterPrice(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("set center price: %w", cpmm.ErrNonPositivePrice)
	}
	s.centerPrice = v
	return nil
}

// SetDecades rejects non-positive spans.
func (s *Session) SetDecades(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("set decades: span must be positive, got %g", v)
	}
	s.decades = v
	return nil
}

// SetSliderPosition moves the final price along the logarithmic slider axis.
// The slider is unconstrained, so this always succeeds.
func (s *Session) SetSliderPosition(pos float64) {
	s.finalPrice = cpmm.SliderToPrice(pos, s.centerPrice, s.decades)
}

// SliderPosition returns the slider coordinate corresponding to the current
// final price under the current calibration.
func (s *Session) SliderPosition() float64 {
	return cpmm.PriceToSlider(s.finalPrice, s.centerPrice, s.decades)
}

// Recompute builds both pool states at the session's shared liquidity and
// computes the trade between them. The trade is modeled as a price move at
// constant liquidity, so initial and final share InitialLiquidity.
func (s *Session) Recompute() (Snapshot, error) {
	initial, err := cpmm.NewPoolState(s.initialLiquidity, s.initialPrice)
	if err != nil {
		return Snapshot{}, fmt.Errorf("initial pool state: %w", err)
	}

	final, err := cpmm.NewPoolState(s.initialLiquidity, s.finalPrice)
	if err != nil {
		return Snapshot{}, fmt.Errorf("final pool state: %w", err)
	}

	result, err := cpmm.ComputeTrade(initial, final, s.feePercent/100)
	if err != nil {
		return Snapshot{}, fmt.Errorf("compute trade: %w", err)
	}

	return Snapshot{Initial: initial, Final: final, Result: result}, nil
}
