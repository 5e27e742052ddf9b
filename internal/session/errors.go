package session

import "errors"

// ErrFeePercentOutOfRange reports a fee percent outside [0, 100). The session
// works in human-facing percent, not the engine's fee fraction.
var ErrFeePercentOutOfRange = errors.New("fee percent must be in [0, 100)")
