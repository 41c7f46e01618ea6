// Package common contains shared constants and sentinel errors used across
// PensUp client components.
package common

import "errors"

var (

	// auth-specific errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// storage-specific errors
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// resolver-specific errors
	ErrRemoteUnavailable = errors.New("remote unavailable")
	ErrCreatorNotFound   = errors.New("creator not found")
)
