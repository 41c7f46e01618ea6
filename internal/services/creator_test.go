package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/fixtures"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/remote"
	"github.com/stretchr/testify/require"
)

// ---- fake remote client ----

type fakeRemote struct {
	mu       sync.Mutex
	profiles map[string]*models.CreatorProfile
	err      error
	// gates, when set for an id, blocks that fetch until the channel closes
	gates map[string]chan struct{}
	calls []string
}

func (f *fakeRemote) FetchCreator(ctx context.Context, id string) (*models.CreatorProfile, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	gate := f.gates[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	profile, ok := f.profiles[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeRemote) Ping(ctx context.Context) error { return nil }
func (f *fakeRemote) Close() error                   { return nil }

func loadFixtures(t *testing.T) *fixtures.Table {
	t.Helper()
	table, err := fixtures.Load()
	require.NoError(t, err)
	return table
}

func remoteAriela() *models.CreatorProfile {
	return &models.CreatorProfile{
		ID:   "ariela-ross",
		Name: "Ariela Ross (live)",
		Bio:  "freshly fetched",
		Counts: models.Counts{
			Works: 5, Followers: 20000,
		},
	}
}

// ---- TESTS ----

func TestResolveWait_FixtureOnly(t *testing.T) {
	fr := &fakeRemote{}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	got, err := r.ResolveWait(context.Background(), "elyse-hart")
	require.NoError(t, err)
	require.Equal(t, "Elyse Hart", got.Name)
}

func TestResolveWait_RemoteWinsOverFixture(t *testing.T) {
	fr := &fakeRemote{profiles: map[string]*models.CreatorProfile{"ariela-ross": remoteAriela()}}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	got, err := r.ResolveWait(context.Background(), "ariela-ross")
	require.NoError(t, err)
	require.Equal(t, "Ariela Ross (live)", got.Name)

	// settled state never reverts to the fixture
	id, latest := r.Latest()
	require.Equal(t, "ariela-ross", id)
	require.Equal(t, "Ariela Ross (live)", latest.Name)
}

func TestResolveWait_RemoteDownKeepsFixture(t *testing.T) {
	fr := &fakeRemote{err: remote.ErrUnavailable}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	got, err := r.ResolveWait(context.Background(), "marcos-lune")
	require.NoError(t, err)
	require.Equal(t, "Marcos Lune", got.Name)
}

func TestResolveWait_NeitherSource_NotFound(t *testing.T) {
	fr := &fakeRemote{}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	_, err := r.ResolveWait(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrCreatorNotFound)
}

func TestResolve_NeverBlocksOnNetwork(t *testing.T) {
	gate := make(chan struct{})
	fr := &fakeRemote{
		profiles: map[string]*models.CreatorProfile{"ariela-ross": remoteAriela()},
		gates:    map[string]chan struct{}{"ariela-ross": gate},
	}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	resolution := r.Resolve(context.Background(), "ariela-ross")

	// first paint comes from the fixture while the fetch is in flight
	require.NotNil(t, resolution.Local)
	require.Equal(t, "Ariela Ross", resolution.Local.Name)
	_, latest := r.Latest()
	require.Equal(t, "Ariela Ross", latest.Name)

	close(gate)
	result, ok := <-resolution.Remote
	require.True(t, ok)
	require.NoError(t, result.Err)
	require.Equal(t, "Ariela Ross (live)", result.Profile.Name)

	_, latest = r.Latest()
	require.Equal(t, "Ariela Ross (live)", latest.Name)
}

func TestResolve_StaleFetchCannotOverwriteNewerRequest(t *testing.T) {
	gate := make(chan struct{})
	fr := &fakeRemote{
		profiles: map[string]*models.CreatorProfile{"ariela-ross": remoteAriela()},
		gates:    map[string]chan struct{}{"ariela-ross": gate},
	}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	stale := r.Resolve(context.Background(), "ariela-ross")
	fresh := r.Resolve(context.Background(), "sanaa-bell")

	// the superseding resolution settles first (remote miss keeps fixture)
	result, ok := <-fresh.Remote
	require.True(t, ok)
	require.ErrorIs(t, result.Err, common.ErrRemoteUnavailable)

	// now let the stale fetch finish: it must be dropped, not delivered
	close(gate)
	_, ok = <-stale.Remote
	require.False(t, ok)

	id, latest := r.Latest()
	require.Equal(t, "sanaa-bell", id)
	require.Equal(t, "Sanaa Bell", latest.Name)
}

func TestResolve_TimeoutFallsBackToFixture(t *testing.T) {
	gate := make(chan struct{}) // never closed: the fetch hangs until ctx expires
	fr := &fakeRemote{gates: map[string]chan struct{}{"marcos-lune": gate}}
	r := NewCreatorResolver(fr, loadFixtures(t), 20*time.Millisecond, nopLogger())

	got, err := r.ResolveWait(context.Background(), "marcos-lune")
	require.NoError(t, err)
	require.Equal(t, "Marcos Lune", got.Name)
}

func TestResolveWait_RemoteOnlyProfile(t *testing.T) {
	fr := &fakeRemote{profiles: map[string]*models.CreatorProfile{
		"newcomer": {ID: "newcomer", Name: "Fresh Face"},
	}}
	r := NewCreatorResolver(fr, loadFixtures(t), 0, nopLogger())

	got, err := r.ResolveWait(context.Background(), "newcomer")
	require.NoError(t, err)
	require.Equal(t, "Fresh Face", got.Name)
}
