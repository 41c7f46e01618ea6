// Package works stores the signed-in user's published works list, written
// by the publish flow and shown on the owner's profile page.
package works

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/storage"
)

// nowFn is a test seam for timestamps.
var nowFn = time.Now

type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Add assigns the work an ID and creation time and prepends it to the
// stored list, so the newest work renders first.
func (r *Repository) Add(ctx context.Context, work models.Work) (models.Work, error) {
	list, err := r.load(ctx)
	if err != nil {
		return models.Work{}, err
	}

	work.ID = uuid.NewString()
	work.CreatedAt = nowFn()
	list = append([]models.Work{work}, list...)

	data, err := json.Marshal(list)
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to encode works: %w", err)
	}
	if !r.store.Set(ctx, storage.KeyPublishedWorks, data) {
		return models.Work{}, common.ErrQuotaExceeded
	}
	return work, nil
}

// ListByOwner returns the stored works published under the given username,
// newest first.
func (r *Repository) ListByOwner(ctx context.Context, username string) ([]models.Work, error) {
	if username == "" {
		return nil, nil
	}

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]models.Work, 0, len(list))
	for _, work := range list {
		if work.Username == username {
			owned = append(owned, work)
		}
	}
	return owned, nil
}

func (r *Repository) load(ctx context.Context) ([]models.Work, error) {
	data, err := r.store.Get(ctx, storage.KeyPublishedWorks)
	if err != nil {
		return nil, fmt.Errorf("failed to read works: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var list []models.Work
	if err := json.Unmarshal(data, &list); err != nil {
		// malformed list is treated as absent
		return nil, nil
	}
	return list, nil
}
