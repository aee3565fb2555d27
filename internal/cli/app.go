package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/sakshipatil0812/finance-family/internal/auth"
	"github.com/sakshipatil0812/finance-family/internal/config"
	"github.com/sakshipatil0812/finance-family/internal/logging"
	"github.com/sakshipatil0812/finance-family/internal/services"
	"github.com/sakshipatil0812/finance-family/internal/store"

	_ "modernc.org/sqlite"
)

// App holds the wired-up application: configuration, services, and the
// interactive reader. Account and session state is cached from the store at
// startup and kept current by the auth command handlers.
type App struct {
	config *config.Config
	log    logging.Logger

	db     *sql.DB
	auth   auth.Service
	ledger services.LedgerService
	plan   services.PlanService

	userName string
	acct     bool
	loggedIn bool

	reader *bufio.Reader
}

// NewApp opens the database at the configured path, runs migrations, and
// wires the services together.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, repos, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	return &App{
		config: c,
		log:    log,
		db:     db,
		auth:   auth.NewService(repos.KV),
		ledger: services.NewLedgerService(db),
		plan:   services.NewPlanService(db, c.RenewalReminderWindow),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores account and session state from the store and enters the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	acct, err := a.auth.AccountExists(ctx)
	if err != nil {
		return err
	}
	a.acct = acct

	authed, err := a.auth.IsAuthenticated(ctx)
	if err != nil {
		return err
	}
	a.loggedIn = authed

	if authed {
		name, err := a.auth.DisplayName(ctx)
		if err != nil {
			return err
		}
		a.userName = name
	}

	printlnFn("famfin family finance tracker (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) hasAccount() bool { return a.acct }
func (a *App) isLoggedIn() bool { return a.loggedIn }

func (a *App) getStatus() string {
	switch {
	case a.loggedIn:
		return a.userName
	case a.acct:
		return "locked"
	default:
		return "new"
	}
}
