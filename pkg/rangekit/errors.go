package rangekit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrNotSized      errorkit.Error = "rangekit: range is not sized"
	ErrNegativeCount errorkit.Error = "rangekit: negative element count"
)
