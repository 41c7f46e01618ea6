// Package storage implements the durable key-value store that holds all
// client-resident state: the profile record, the account ledger, the session
// flag and the auxiliary UI-mode flags.
//
// The store mirrors the behavior of an origin-scoped browser store: writes
// are synchronous and last-write-wins, and a write that would exceed the
// configured quota is refused rather than raised, so callers can apply a
// fallback write.
package storage

import "context"

// Persisted keys. The first five are fixed names kept for behavioral parity
// with the original client; the rest are extensions of the same contract.
const (
	KeyProfile        = "profile"
	KeyAuthenticated  = "authenticated"
	KeyAccounts       = "accounts"
	KeyProfileType    = "profileType"
	KeyAuthorApproved = "authorApproved"

	KeyCurrentUser    = "currentUser"
	KeyPublishedWorks = "publishedWorks"
	KeyIntroSeen      = "introSeen"
)

// Store is the durable key-value medium.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set never raises to the caller; it reports false when the write did
//     not happen (quota exceeded or medium failure), so callers can retry
//     with a reduced payload.
//   - Delete removes the key; deleting an absent key is not an error.
//
// Callers are responsible for defensive parsing of stored values: a
// malformed payload must be treated identically to an absent one.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) bool
	Delete(ctx context.Context, key string) error
}
