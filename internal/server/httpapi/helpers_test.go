package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/neontetris/internal/digest"
	"github.com/dmitrijs2005/neontetris/internal/logging"
	"github.com/dmitrijs2005/neontetris/internal/server/assets"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/repotest"
	"github.com/dmitrijs2005/neontetris/internal/server/services"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	ts   *httptest.Server
	db   *sql.DB
	rm   repomanager.RepositoryManager
	root string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := repotest.OpenSQLite(t)
	rm := repomanager.NewSQLiteRepositoryManager()
	log := logging.Nop()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<!doctype html><title>Neon Tetris</title>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "game.js"), []byte("startGame()"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "font.woff2"), []byte("bin"), 0o644))

	srv := NewHTTPServer("127.0.0.1:0", log, Services{
		Users:       services.NewUserService(db, rm, digest.SHA256{}, log),
		Games:       services.NewGameService(db, rm, false, log),
		Leaderboard: services.NewLeaderboardService(db, rm),
		Store:       db,
	}, assets.NewDirSource(root), Options{MaxBodyBytes: 4096})

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return &testEnv{ts: ts, db: db, rm: rm, root: root}
}

type apiResponse struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
	Save  json.RawMessage `json:"save"`
	Top   []struct {
		UserName  string `json:"username"`
		HighScore int64  `json:"highScore"`
	} `json:"top"`
}

func do(t *testing.T, method, url string, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func (e *testEnv) call(t *testing.T, method, path, body string) (int, apiResponse) {
	t.Helper()
	resp, b := do(t, method, e.ts.URL+path, body)
	var out apiResponse
	require.NoError(t, json.Unmarshal(b, &out), "body: %s", b)
	return resp.StatusCode, out
}

// fakes for paths the real services cannot reach

type panickingGames struct{}

func (panickingGames) Save(context.Context, []byte) error { panic("board exploded") }
func (panickingGames) Load(context.Context, string) (json.RawMessage, error) {
	panic(errors.New("load exploded"))
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }
