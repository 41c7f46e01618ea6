// Package services contains the application services of the PensUp client:
// the session controller, the owned-profile repository and the creator
// resolver. This file defines the profile repository: quota-aware load,
// save and reset of the signed-in user's own profile record.
package services

import (
	"context"
	"encoding/json"

	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/logging"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/storage"
)

// SessionInfo is the pull half of the session contract: the current
// identity at the moment of the call. SessionController satisfies it.
type SessionInfo interface {
	Current() (username string, signedIn bool)
}

// SaveResult reports what a profile save actually persisted.
//
//   - Stored true, Reduced false: the full record was written.
//   - Stored true, Reduced true: the record was written without its inline
//     images after the full write hit the storage quota.
//   - Stored false: nothing persisted; the caller must tell the user.
type SaveResult struct {
	Stored  bool
	Reduced bool
}

// ProfileRepository reads and writes the owned ProfileRecord. Mutations
// require an active session; the repository re-validates the guard even
// though callers are expected to check it first.
type ProfileRepository struct {
	store   storage.Store
	session SessionInfo
	log     logging.Logger
}

func NewProfileRepository(store storage.Store, session SessionInfo, log logging.Logger) *ProfileRepository {
	return &ProfileRepository{store: store, session: session, log: log}
}

// Load returns the stored record, with partial records merged over the
// defaults. Absence and parse failure both yield the empty profile; Load
// never fails.
func (r *ProfileRepository) Load(ctx context.Context) models.ProfileRecord {
	return loadStoredProfile(ctx, r.store)
}

// Save normalizes the candidate to its field caps, fills cleared fields
// from the defaults and writes the record. If the full write exceeds the
// quota, the two inline image fields are stripped and the write retried
// once, so oversized images never cost the user their text edits.
func (r *ProfileRepository) Save(ctx context.Context, candidate models.ProfileRecord) (SaveResult, error) {
	if _, signedIn := r.session.Current(); !signedIn {
		return SaveResult{}, common.ErrNotAuthenticated
	}

	normalized := candidate.Normalize().MergeDefaults()

	if storeProfile(ctx, r.store, normalized) {
		return SaveResult{Stored: true}, nil
	}

	r.log.Warn(ctx, "full profile write refused, retrying without images")
	if storeProfile(ctx, r.store, normalized.StripImages()) {
		return SaveResult{Stored: true, Reduced: true}, nil
	}

	return SaveResult{}, common.ErrQuotaExceeded
}

// Reset replaces the stored record with the defaults, discarding any
// inline image data.
func (r *ProfileRepository) Reset(ctx context.Context) (models.ProfileRecord, error) {
	if _, signedIn := r.session.Current(); !signedIn {
		return models.ProfileRecord{}, common.ErrNotAuthenticated
	}

	empty := models.EmptyProfile()
	if !storeProfile(ctx, r.store, empty) {
		return models.ProfileRecord{}, common.ErrQuotaExceeded
	}
	return empty, nil
}

// ProfileType returns the auxiliary profile-mode flag, empty when unset.
func (r *ProfileRepository) ProfileType(ctx context.Context) string {
	data, err := r.store.Get(ctx, storage.KeyProfileType)
	if err != nil || data == nil {
		return ""
	}
	return string(data)
}

func (r *ProfileRepository) SetProfileType(ctx context.Context, value string) error {
	if _, signedIn := r.session.Current(); !signedIn {
		return common.ErrNotAuthenticated
	}
	if !r.store.Set(ctx, storage.KeyProfileType, []byte(value)) {
		return common.ErrQuotaExceeded
	}
	return nil
}

// AuthorApproved returns the author-approval flag, false when unset.
func (r *ProfileRepository) AuthorApproved(ctx context.Context) bool {
	data, err := r.store.Get(ctx, storage.KeyAuthorApproved)
	if err != nil {
		return false
	}
	return string(data) == "true"
}

func (r *ProfileRepository) SetAuthorApproved(ctx context.Context, approved bool) error {
	if _, signedIn := r.session.Current(); !signedIn {
		return common.ErrNotAuthenticated
	}
	value := "false"
	if approved {
		value = "true"
	}
	if !r.store.Set(ctx, storage.KeyAuthorApproved, []byte(value)) {
		return common.ErrQuotaExceeded
	}
	return nil
}

// loadStoredProfile and storeProfile are shared with the session
// controller, which seeds the profile name during sign-up.

func loadStoredProfile(ctx context.Context, store storage.Store) models.ProfileRecord {
	data, err := store.Get(ctx, storage.KeyProfile)
	if err != nil || data == nil {
		return models.EmptyProfile()
	}

	var record models.ProfileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.EmptyProfile()
	}
	return record.MergeDefaults()
}

func storeProfile(ctx context.Context, store storage.Store, record models.ProfileRecord) bool {
	data, err := json.Marshal(record)
	if err != nil {
		return false
	}
	return store.Set(ctx, storage.KeyProfile, data)
}
