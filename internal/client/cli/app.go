// Package cli is an interactive terminal client for the game server: account
// registration, credential checks, saves and the leaderboard.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/neontetris/internal/client/client"
	"github.com/dmitrijs2005/neontetris/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, api, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	a.printf("Neon Tetris CLI, server %s (type 'help' for commands)\n", a.config.ServerURL)
	a.runREPL(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
