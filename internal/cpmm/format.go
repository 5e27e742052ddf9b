package cpmm

import (
	"fmt"
	"math"
)

// FormatNumber renders a value for display: scientific notation with 6
// fractional digits for tiny magnitudes (below 1e-4, zero excluded),
// scientific with 4 digits at 1e6 and above, fixed-point with 6 digits
// otherwise. The output is lossy and must never be parsed back for
// computation.
func FormatNumber(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs < 0.0001 && value != 0:
		return fmt.Sprintf("%.6e", value)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.4e", value)
	default:
		return fmt.Sprintf("%.6f", value)
	}
}
