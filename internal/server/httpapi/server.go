// Package httpapi exposes the game operations as a JSON API and serves the
// frontend build for every other path.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/neontetris/internal/logging"
	"github.com/dmitrijs2005/neontetris/internal/server/assets"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

type UserService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
}

type GameService interface {
	Save(ctx context.Context, payload []byte) error
	Load(ctx context.Context, username string) (json.RawMessage, error)
}

type LeaderboardService interface {
	Top(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// Pinger checks the store; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Services bundles what the handlers call into.
type Services struct {
	Users       UserService
	Games       GameService
	Leaderboard LeaderboardService
	Store       Pinger
}

type Options struct {
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	svc     Services
	assets  assets.Source
	opts    Options
	handler http.Handler
}

func NewHTTPServer(a string, l logging.Logger, svc Services, src assets.Source, opts Options) *HTTPServer {
	s := &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		svc:     svc,
		assets:  src,
		opts:    opts,
	}
	s.handler = s.routes()
	return s
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listen)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
