package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/taskdeck/taskdeck/internal/client/api"
	"github.com/taskdeck/taskdeck/internal/client/config"
	"github.com/taskdeck/taskdeck/internal/client/nav"
	"github.com/taskdeck/taskdeck/internal/client/repositories/state"
	"github.com/taskdeck/taskdeck/internal/client/services"
	"github.com/taskdeck/taskdeck/internal/client/session"
	"github.com/taskdeck/taskdeck/internal/filex"
	"github.com/taskdeck/taskdeck/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	sessions  *session.Store
	navigator *nav.Navigator
	auth      services.AuthService
	tasks     services.TaskService
	cats      services.CategoryService
	db        *sql.DB
	log       logging.Logger
	Mode      Mode
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dsn := c.StateDSN
	if dsn == "" {
		dir, err := filex.StateDir("taskdeck")
		if err != nil {
			return nil, err
		}
		dsn = filepath.Join(dir, "state.db")
	}

	db, err := state.Open(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing state database", "err", err)
		return nil, err
	}

	sessions := session.NewStore(ctx, db, log)
	navigator := nav.NewNavigator(sessions, log)

	apiClient := api.New(c.ServerBaseURL, sessions, navigator.RedirectToLogin, c.RequestTimeout, log)

	app := &App{
		config:    c,
		sessions:  sessions,
		navigator: navigator,
		auth:      services.NewAuthService(apiClient, sessions, log),
		tasks:     services.NewTaskService(apiClient),
		cats:      services.NewCategoryService(apiClient),
		db:        db,
		log:       log,
		Mode:      ModeOnline,
		reader:    bufio.NewReader(os.Stdin),
	}

	// A persisted session from a previous run skips the login screen.
	if sessions.Get().Authenticated() {
		navigator.Go(nav.RouteDashboard)
	}

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Get().Authenticated()
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
