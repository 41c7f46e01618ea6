package remote

import "errors"

var (
	ErrUnavailable = errors.New("endpoint unavailable")
	ErrNotFound    = errors.New("creator not found")
)
