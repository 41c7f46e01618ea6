// Package remote implements the read-only network collaborator of the
// creator resolver: a lookup-by-id endpoint returning a profile-shaped JSON
// payload. No write endpoint exists; creator profiles are never mutated
// through this layer.
package remote

import (
	"context"

	"github.com/pensup/pensup/internal/models"
)

// Client is the remote creator-profile lookup.
//
// Contract:
//   - FetchCreator: return the creator's profile, ErrNotFound when the
//     endpoint has no record for the id, or ErrUnavailable for any
//     transport error, non-2xx status or malformed payload.
//   - Ping: check endpoint reachability.
//   - Close: release underlying resources.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	FetchCreator(ctx context.Context, id string) (*models.CreatorProfile, error)
	Ping(ctx context.Context) error
	Close() error
}
