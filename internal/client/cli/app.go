// Package cli implements the interactive shell of the useradm client.
package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dpetrovs/useradm/internal/client/api"
	"github.com/dpetrovs/useradm/internal/client/config"
	"github.com/dpetrovs/useradm/internal/client/services"
	"github.com/dpetrovs/useradm/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	client   api.Client
	session  services.SessionStore
	users    services.UserService
	nav      *routeNavigator
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := api.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	httpClient := api.NewHTTPClient(c.BaseURL, api.WithTimeout(c.RequestTimeout), api.WithLogger(logger))

	nav := newRouteNavigator(os.Stdout)
	session := services.NewSessionStore(httpClient, repos.Tokens, nav, logger)
	users := services.NewUserService(httpClient, session, logger)

	return &App{
		config:  c,
		client:  httpClient,
		session: session,
		users:   users,
		nav:     nav,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	if err := a.session.Init(ctx); err != nil {
		log.Printf("session restore failed: %v", err)
	}
	if a.session.IsLoggedIn() {
		log.Println("Restored previous session")
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}
