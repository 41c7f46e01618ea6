package cli

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/pensup/pensup/internal/bus"
	"github.com/pensup/pensup/internal/config"
	"github.com/pensup/pensup/internal/fixtures"
	"github.com/pensup/pensup/internal/logging"
	"github.com/pensup/pensup/internal/models"
	"github.com/pensup/pensup/internal/remote"
	"github.com/pensup/pensup/internal/repositories/accounts"
	"github.com/pensup/pensup/internal/repositories/works"
	"github.com/pensup/pensup/internal/services"
	"github.com/pensup/pensup/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the PensUp client together: the durable store, the session
// controller, the profile repository, the creator resolver and the
// published-works ledger, all behind a line-oriented REPL.
type App struct {
	config   *config.Config
	store    *storage.SQLiteStore
	bus      *bus.Bus
	remote   remote.Client
	session  *services.SessionController
	profiles *services.ProfileRepository
	creators *services.CreatorResolver
	works    *works.Repository
	log      logging.Logger
	reader   *bufio.Reader

	// prompt state, pulled once at startup and then kept fresh by the bus
	mu             sync.Mutex
	promptUser     string
	promptSignedIn bool
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.OpenSQLite(ctx, cfg.LocalDBPath, cfg.QuotaBytes, log)
	if err != nil {
		return nil, err
	}

	table, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	apiClient := remote.NewHTTPClient(cfg.RemoteBaseURL, cfg.RemoteAPIKey)

	b := bus.New()
	ledger := accounts.NewRepository(store)
	session := services.NewSessionController(ctx, store, ledger, b, log)
	profiles := services.NewProfileRepository(store, session, log)
	creators := services.NewCreatorResolver(apiClient, table, cfg.FetchTimeout, log)

	a := &App{
		config:   cfg,
		store:    store,
		bus:      b,
		remote:   apiClient,
		session:  session,
		profiles: profiles,
		creators: creators,
		works:    works.NewRepository(store),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}

	// Pull the restored state first, then listen: a transition landing
	// between the two would otherwise be missed by the prompt.
	a.promptUser, a.promptSignedIn = session.Current()
	b.Subscribe(func(e models.SessionEvent) {
		a.mu.Lock()
		a.promptUser = e.Username
		a.promptSignedIn = e.Authenticated
		a.mu.Unlock()
	})

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	defer a.remote.Close()

	a.showIntroOnce(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.promptSignedIn
}

func (a *App) status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.promptSignedIn {
		return a.promptUser
	}
	return "signed out"
}

// showIntroOnce prints the welcome notice on the very first start and
// persists the flag so later starts skip it.
func (a *App) showIntroOnce(ctx context.Context) {
	seen, err := a.store.Get(ctx, storage.KeyIntroSeen)
	if err == nil && string(seen) == "true" {
		return
	}

	printlnFn("Welcome to PensUp — a home for your stories.")
	printlnFn("Type 'help' to see what you can do here.")
	a.store.Set(ctx, storage.KeyIntroSeen, []byte("true"))
}
