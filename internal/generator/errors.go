package generator

import "errors"

var (
	// ErrMissingOutputPath indicates Generate was called without a destination.
	ErrMissingOutputPath = errors.New("output path is required")

	// ErrMissingData indicates Generate was called without application data.
	ErrMissingData = errors.New("application data is required")
)
