// Package cli is the terminal front-end of the ForumApp client: a small
// menu-driven REPL over the forum gateway. It renders state and dispatches
// intents; all domain logic stays in the services layer.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/hbv501g/forumapp/internal/client/api"
	"github.com/hbv501g/forumapp/internal/client/config"
	"github.com/hbv501g/forumapp/internal/client/services"
	"github.com/hbv501g/forumapp/internal/client/session"
	"github.com/hbv501g/forumapp/internal/logging"
)

type App struct {
	config *config.Config
	forum  *services.ForumService
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := sql.Open("sqlite", c.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := session.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions := session.NewStore(ctx, db, log)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, log)
	forum := services.NewForumService(apiClient, sessions, log)

	return &App{
		config: c,
		forum:  forum,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
