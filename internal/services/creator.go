package services

import (
	"context"
	"sync"
	"time"

	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/fixtures"
	"github.com/pensup/pensup/internal/logging"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/remote"
)

// RemoteResult is the settled outcome of a creator's remote lookup. Err is
// always common.ErrRemoteUnavailable when set: transport errors, malformed
// payloads, timeouts and remote not-found all fold into it.
type RemoteResult struct {
	Profile *models.CreatorProfile
	Err     error
}

// Resolution is a two-phase creator lookup. Local is the first-paint value
// from the bundled fixtures (nil when no fixture exists) and is available
// immediately; Remote settles exactly once, unless the resolution was
// superseded by a newer Resolve call, in which case the channel closes
// without a value.
type Resolution struct {
	Local  *models.CreatorProfile
	Remote <-chan RemoteResult
}

// CreatorResolver looks up third-party profiles from two sources: the
// bundled fixture table (synchronously, for instant render) and the remote
// endpoint (concurrently, with a bounded timeout). A successful fetch is
// authoritative and replaces the fixture; once settled it is never
// downgraded back to the fixture.
type CreatorResolver struct {
	remote   remote.Client
	fixtures *fixtures.Table
	timeout  time.Duration
	log      logging.Logger

	mu         sync.Mutex
	generation uint64
	latestID   string
	latest     *models.CreatorProfile
}

func NewCreatorResolver(client remote.Client, table *fixtures.Table, timeout time.Duration, log logging.Logger) *CreatorResolver {
	return &CreatorResolver{remote: client, fixtures: table, timeout: timeout, log: log}
}

// Resolve starts a lookup for id. It never blocks on the network: the
// fixture value (or nil) is returned immediately and the remote fetch runs
// in the background. Each call bumps an in-flight generation; a fetch
// outlived by a newer call cannot overwrite the latest slot and its
// channel closes without delivering.
func (r *CreatorResolver) Resolve(ctx context.Context, id string) Resolution {
	r.mu.Lock()
	r.generation++
	generation := r.generation
	local := r.fixtures.ByID(id)
	r.latestID = id
	r.latest = local
	r.mu.Unlock()

	results := make(chan RemoteResult, 1)
	go r.fetch(ctx, id, generation, results)

	return Resolution{Local: local, Remote: results}
}

func (r *CreatorResolver) fetch(ctx context.Context, id string, generation uint64, results chan<- RemoteResult) {
	defer close(results)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	profile, err := r.remote.FetchCreator(ctx, id)

	r.mu.Lock()
	stale := r.generation != generation
	if !stale && err == nil {
		r.latest = profile
	}
	r.mu.Unlock()

	if stale {
		r.log.Debug(ctx, "dropping stale creator fetch", "id", id)
		return
	}
	if err != nil {
		r.log.Debug(ctx, "remote creator lookup failed", "id", id, "error", err)
		results <- RemoteResult{Err: common.ErrRemoteUnavailable}
		return
	}
	results <- RemoteResult{Profile: profile}
}

// Latest returns the id and profile of the most recent resolution in its
// current state: the fixture until the fetch settles, the remote value
// after. The profile is nil when neither source had the id.
func (r *CreatorResolver) Latest() (string, *models.CreatorProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latestID, r.latest
}

// ResolveWait resolves id and blocks until the remote fetch settles,
// reconciling the two sources: remote wins on success, the fixture stands
// on remote failure, and ErrCreatorNotFound is returned when neither
// source has the id.
func (r *CreatorResolver) ResolveWait(ctx context.Context, id string) (*models.CreatorProfile, error) {
	resolution := r.Resolve(ctx, id)

	select {
	case result, ok := <-resolution.Remote:
		if ok && result.Profile != nil {
			return result.Profile, nil
		}
	case <-ctx.Done():
	}

	if resolution.Local != nil {
		return resolution.Local, nil
	}
	return nil, common.ErrCreatorNotFound
}
