package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/config"
	"github.com/storyline-app/storyline-cli/internal/client/identity"
	"github.com/storyline-app/storyline-cli/internal/client/models"
	"github.com/storyline-app/storyline-cli/internal/client/services"
	"github.com/storyline-app/storyline-cli/internal/client/snapshot"
	"github.com/storyline-app/storyline-cli/internal/logging"
)

// The command handlers talk to the API through these small surfaces so tests
// can substitute fakes without a server.
type itemAPI interface {
	List(ctx context.Context, q services.ItemQuery) ([]models.Record, error)
	CreateFromText(ctx context.Context, text string) (models.Record, error)
}

type scheduleAPI interface {
	List(ctx context.Context, month string) ([]models.Record, error)
}

type transactionAPI interface {
	List(ctx context.Context) ([]models.Record, error)
}

type searchAPI interface {
	Search(ctx context.Context, q services.SearchQuery) ([]models.Record, error)
	SearchPrefix(ctx context.Context, q services.SearchQuery) ([]models.Record, error)
}

type reportAPI interface {
	MonthlySummary(ctx context.Context, year, month int) (models.Summary, error)
}

type aiAPI interface {
	ParseText(ctx context.Context, text string) (models.ParseResult, error)
}

type healthAPI interface {
	Ping(ctx context.Context) error
}

type sessionAPI interface {
	SignedIn() bool
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
}

// App is the interactive Storyline client.
type App struct {
	config  *config.Config
	session sessionAPI
	store   *snapshot.Store

	items        itemAPI
	schedules    scheduleAPI
	transactions transactionAPI
	search       searchAPI
	reports      reportAPI
	ai           aiAPI
	health       healthAPI

	reader *bufio.Reader
	log    logging.Logger

	email string
	// most recent listing; feeds the filter and export commands
	fetched []models.Record
}

// NewApp wires the full client: snapshot database, identity provider with
// persisted sessions, the API gateway and the per-endpoint services.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(slog.LevelInfo)

	store, err := snapshot.Open(ctx, cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	idCfg := identity.Config{
		APIKey:      cfg.APIKey,
		SignInURL:   cfg.SignInURL,
		TokenURL:    cfg.TokenURL,
		WaitTimeout: cfg.WaitTimeout,
	}
	provider := identity.New(idCfg,
		identity.WithLogger(log),
		identity.WithSessionStore(snapshot.NewSessionStore(store.Metadata)),
	)
	if err := provider.Resume(ctx); err != nil {
		log.Debug(ctx, "no stored session to resume", "error", err)
	}

	gw := api.New(cfg.APIBaseURL, provider, api.WithLogger(log))

	return &App{
		config:       cfg,
		session:      provider,
		store:        store,
		items:        services.NewItemService(gw),
		schedules:    services.NewScheduleService(gw),
		transactions: services.NewTransactionService(gw),
		search:       services.NewSearchService(gw),
		reports:      services.NewReportService(gw),
		ai:           services.NewAIService(gw),
		health:       services.NewHealthService(gw),
		reader:       bufio.NewReader(os.Stdin),
		log:          log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.SignedIn()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.email != "" {
		return "(" + a.email + ")"
	}
	if a.isLoggedIn() {
		return "(signed in)"
	}
	return ""
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.store != nil {
			_ = a.store.Close()
		}
	}()

	fmt.Println("Storyline CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
