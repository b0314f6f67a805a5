// Package server wires configuration, the store, services and the HTTP API
// into a runnable application. Startup is two-phase: the store must answer a
// ping and be migrated before the listener opens.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/neontetris/internal/common"
	"github.com/dmitrijs2005/neontetris/internal/digest"
	"github.com/dmitrijs2005/neontetris/internal/logging"
	"github.com/dmitrijs2005/neontetris/internal/server/assets"
	"github.com/dmitrijs2005/neontetris/internal/server/config"
	"github.com/dmitrijs2005/neontetris/internal/server/httpapi"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/neontetris/internal/server/services"
)

// seams for tests
var (
	sqlOpen   = sql.Open
	newAssets = assets.New
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.HTTPServer
}

// NewApp connects to the store, runs migrations and builds the HTTP server.
// A store that does not answer within ConnectTimeout yields an error of kind
// store_unavailable.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	hasher, err := digest.New(c.PasswordHasher)
	if err != nil {
		return nil, err
	}

	db, err := openStore(ctx, rm, c)
	if err != nil {
		return nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	src, err := newAssets(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("assets: %w", err)
	}

	svc := httpapi.Services{
		Users:       services.NewUserService(db, rm, hasher, logger),
		Games:       services.NewGameService(db, rm, c.AtomicSave, logger),
		Leaderboard: services.NewLeaderboardService(db, rm),
		Store:       db,
	}

	srv := httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, svc, src, httpapi.Options{
		MaxBodyBytes:    c.MaxBodyBytes,
		ShutdownTimeout: c.ShutdownTimeout,
	})

	logger.Info(ctx, "store ready", "driver", rm.DriverName(), "atomic_save", c.AtomicSave, "hasher", c.PasswordHasher)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func openStore(ctx context.Context, rm repomanager.RepositoryManager, c *config.Config) (*sql.DB, error) {
	db, err := sqlOpen(rm.DriverName(), c.DatabaseDSN)
	if err != nil {
		return nil, common.WrapError(common.KindStoreUnavailable, common.ErrorStoreUnavailable.Message, err)
	}
	rm.ConfigurePool(db)

	pingCtx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, common.WrapError(common.KindStoreUnavailable, common.ErrorStoreUnavailable.Message, err)
	}

	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "closing store", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
