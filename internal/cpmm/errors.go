package cpmm

import "errors"

var (
	ErrNonPositiveLiquidity = errors.New("liquidity must be positive")
	ErrNonPositivePrice     = errors.New("price must be positive")
	ErrFeeOutOfRange        = errors.New("fee fraction must be in [0, 1)")
)
