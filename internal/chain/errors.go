package chain

import "errors"

var (
	ErrEmptyReserves  = errors.New("pair has empty reserves")
	ErrInvalidAddress = errors.New("invalid pair address")
)
