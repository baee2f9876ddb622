package iterators

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrCategory is the panic value when an operation needs a stronger iterator category than what was given.
	ErrCategory errorkit.Error = "iterators: insufficient iterator category"
	// ErrOutOfRange is the panic value when a position outside of the valid range is accessed.
	ErrOutOfRange errorkit.Error = "iterators: position out of range"
	// ErrInvalidSize is the panic value when a size or count argument is not valid.
	ErrInvalidSize errorkit.Error = "iterators: invalid size"
)
