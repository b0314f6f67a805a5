package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables only", func(t *testing.T) {
		t.Setenv("TETRIS_HTTP_ADDR", ":9999")
		t.Setenv("TETRIS_DB_DRIVER", "sqlite")
		t.Setenv("TETRIS_CONNECT_TIMEOUT", "250ms")
		t.Setenv("TETRIS_ATOMIC_SAVE", "true")
		t.Setenv("TETRIS_MAX_BODY_BYTES", "2048")
		t.Setenv("TETRIS_S3_BUCKET", "assets")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
		assert.Equal(t, "sqlite", cfg.DatabaseDriver)
		assert.Equal(t, 250*time.Millisecond, cfg.ConnectTimeout)
		assert.True(t, cfg.AtomicSave)
		assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
		assert.Equal(t, "assets", cfg.S3Bucket)

		assert.Equal(t, "sha256", cfg.PasswordHasher)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("unset variables keep file values", func(t *testing.T) {
		t.Setenv("TETRIS_LOG_LEVEL", "warn")

		cfg := &Config{}
		cfg.LoadDefaults()
		cfg.AtomicSave = true
		cfg.DatabaseDSN = "file:from-json.db"
		parseEnv(cfg)

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.AtomicSave)
		assert.Equal(t, "file:from-json.db", cfg.DatabaseDSN)
		assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	})

	t.Run("explicit false overrides", func(t *testing.T) {
		t.Setenv("TETRIS_ATOMIC_SAVE", "false")

		cfg := &Config{AtomicSave: true}
		parseEnv(cfg)
		assert.False(t, cfg.AtomicSave)
	})

	t.Run("bad size panics", func(t *testing.T) {
		t.Setenv("TETRIS_MAX_BODY_BYTES", "huge")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad bool panics", func(t *testing.T) {
		t.Setenv("TETRIS_ATOMIC_SAVE", "sometimes")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad duration panics", func(t *testing.T) {
		t.Setenv("TETRIS_SHUTDOWN_TIMEOUT", "forever")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
