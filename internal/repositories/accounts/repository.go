// Package accounts implements the local account ledger: the set of
// username/password pairs consulted by sign-in and sign-up.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/storage"
)

// Repository stores the ledger as a JSON array under a single key. The
// username is the unique key within the array; uniqueness is enforced by
// filter-then-append on every write.
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Find returns the credential matching both username and password exactly,
// or nil when no such account exists. A malformed stored ledger is treated
// as empty.
func (r *Repository) Find(ctx context.Context, username, password string) (*models.AccountCredential, error) {
	ledger, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, account := range ledger {
		if account.Username == username && account.Password == password {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

// Upsert replaces any existing entry with the same username and appends the
// new pair, persisting the full list.
func (r *Repository) Upsert(ctx context.Context, username, password string) error {
	ledger, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.AccountCredential, 0, len(ledger)+1)
	for _, account := range ledger {
		if account.Username != username {
			kept = append(kept, account)
		}
	}
	kept = append(kept, models.AccountCredential{Username: username, Password: password})

	data, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if !r.store.Set(ctx, storage.KeyAccounts, data) {
		return common.ErrQuotaExceeded
	}
	return nil
}

func (r *Repository) load(ctx context.Context) ([]models.AccountCredential, error) {
	data, err := r.store.Get(ctx, storage.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var ledger []models.AccountCredential
	if err := json.Unmarshal(data, &ledger); err != nil {
		// malformed ledger is treated as absent
		return nil, nil
	}
	return ledger, nil
}
