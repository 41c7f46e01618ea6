package services

import (
	"context"
	"strings"
	"sync"

	"github.com/pensup/pensup/internal/bus"
	"github.com/pensup/pensup/internal/common"
	"github.com/pensup/pensup/internal/logging"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/repositories/accounts"
	"github.com/pensup/pensup/internal/storage"
)

// SessionController tracks the single signed-in identity of this context.
//
// Contract:
//   - SignIn: validate against the account ledger; ErrAccountNotFound on a
//     miss (wrong username or wrong password, indistinguishably).
//   - SignUp: ErrMissingCredentials when either trimmed field is empty;
//     otherwise upsert the account and sign in, seeding the profile name
//     with the username if none is set yet.
//   - SignOut: clear the persisted flag; the profile record and the
//     account ledger are left untouched.
//
// Every transition persists through the durable store and publishes
// exactly one SessionEvent on the broadcast bus. The persisted flag has no
// expiry; a signed-in state survives restarts until an explicit sign-out.
type SessionController struct {
	store  storage.Store
	ledger *accounts.Repository
	bus    *bus.Bus
	log    logging.Logger

	mu       sync.Mutex
	username string
	signedIn bool
}

// NewSessionController restores the persisted session state (if any) and
// returns a controller. It does not publish: subscribers pull the restored
// state via Current before listening.
func NewSessionController(ctx context.Context, store storage.Store, ledger *accounts.Repository, b *bus.Bus, log logging.Logger) *SessionController {
	c := &SessionController{store: store, ledger: ledger, bus: b, log: log}

	flag, err := store.Get(ctx, storage.KeyAuthenticated)
	if err == nil && string(flag) == "true" {
		user, err := store.Get(ctx, storage.KeyCurrentUser)
		if err == nil {
			c.signedIn = true
			c.username = string(user)
		}
	}
	return c
}

// Current returns the identity at the moment of the call. New observers
// must call this before subscribing to the bus (pull-then-listen), or they
// can miss a transition that lands between mount and subscription.
func (c *SessionController) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.username, c.signedIn
}

func (c *SessionController) SignIn(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	account, err := c.ledger.Find(ctx, username, password)
	if err != nil {
		return err
	}
	if account == nil {
		return common.ErrAccountNotFound
	}

	c.completeAuth(ctx, username)
	return nil
}

func (c *SessionController) SignUp(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return common.ErrMissingCredentials
	}

	if err := c.ledger.Upsert(ctx, username, password); err != nil {
		return err
	}

	c.completeAuth(ctx, username)
	return nil
}

func (c *SessionController) SignOut(ctx context.Context) error {
	if !c.store.Set(ctx, storage.KeyAuthenticated, []byte("false")) {
		c.log.Warn(ctx, "failed to persist signed-out flag")
	}
	if err := c.store.Delete(ctx, storage.KeyCurrentUser); err != nil {
		c.log.Warn(ctx, "failed to clear current user", "error", err)
	}

	c.mu.Lock()
	c.username = ""
	c.signedIn = false
	c.mu.Unlock()

	c.bus.Publish(models.SessionEvent{Authenticated: false})
	c.log.Info(ctx, "signed out")
	return nil
}

// completeAuth persists the new identity, seeds the profile name when none
// is set yet, updates in-memory state and broadcasts the transition.
func (c *SessionController) completeAuth(ctx context.Context, username string) {
	if !c.store.Set(ctx, storage.KeyAuthenticated, []byte("true")) {
		c.log.Warn(ctx, "failed to persist signed-in flag", "user", username)
	}
	if !c.store.Set(ctx, storage.KeyCurrentUser, []byte(username)) {
		c.log.Warn(ctx, "failed to persist current user", "user", username)
	}

	profile := loadStoredProfile(ctx, c.store)
	if profile.Name == "" {
		profile.Name = username
		if !storeProfile(ctx, c.store, profile) {
			c.log.Warn(ctx, "failed to seed profile name", "user", username)
		}
	}

	c.mu.Lock()
	c.username = username
	c.signedIn = true
	c.mu.Unlock()

	c.bus.Publish(models.SessionEvent{Authenticated: true, Username: username})
	c.log.Info(ctx, "signed in", "user", username)
}
