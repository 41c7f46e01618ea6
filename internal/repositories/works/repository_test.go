package works

import (
	"context"
	"testing"
	"time"

	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestAdd_AssignsIDAndTimestamp(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore(0))

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = time.Now })

	got, err := r.Add(context.Background(), models.Work{Username: "nia", Title: "Harborlight"})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.Equal(t, fixed, got.CreatedAt)
}

func TestAdd_NewestFirst(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore(0))
	ctx := context.Background()

	_, err := r.Add(ctx, models.Work{Username: "nia", Title: "older"})
	require.NoError(t, err)
	_, err = r.Add(ctx, models.Work{Username: "nia", Title: "newer"})
	require.NoError(t, err)

	list, err := r.ListByOwner(ctx, "nia")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "newer", list[0].Title)
	require.Equal(t, "older", list[1].Title)
}

func TestListByOwner_FiltersByUsername(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore(0))
	ctx := context.Background()

	_, err := r.Add(ctx, models.Work{Username: "nia", Title: "mine"})
	require.NoError(t, err)
	_, err = r.Add(ctx, models.Work{Username: "other", Title: "theirs"})
	require.NoError(t, err)

	list, err := r.ListByOwner(ctx, "nia")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "mine", list[0].Title)
}

func TestListByOwner_EmptyUsername(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore(0))

	list, err := r.ListByOwner(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, list)
}

func TestAdd_QuotaFailureSurfaced(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore(8))

	_, err := r.Add(context.Background(), models.Work{Username: "nia", Title: "too big"})
	require.ErrorIs(t, err, common.ErrQuotaExceeded)
}

func TestLoad_MalformedListTreatedAsEmpty(t *testing.T) {
	store := storage.NewMemoryStore(0)
	ctx := context.Background()
	require.True(t, store.Set(ctx, storage.KeyPublishedWorks, []byte("[broken")))

	r := NewRepository(store)
	list, err := r.ListByOwner(ctx, "nia")
	require.NoError(t, err)
	require.Empty(t, list)
}
