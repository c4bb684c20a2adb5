package sim

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidPrice     = errors.New("price must be a non-negative finite number")
	ErrInvalidMarketing = errors.New("marketing budget must be a non-negative finite number")
)
