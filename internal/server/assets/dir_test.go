package assets

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/neontetris/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestDirSource_Open(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<html></html>")
	writeFile(t, root, "js/app.js", "console.log(1)")

	outside := t.TempDir()
	writeFile(t, outside, "secret.txt", "nope")

	src := NewDirSource(root)
	ctx := context.Background()

	read := func(name string) (string, error) {
		rc, err := src.Open(ctx, name)
		if err != nil {
			return "", err
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		return string(b), err
	}

	got, err := read("index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", got)

	got, err = read("/js/app.js")
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", got)

	for _, name := range []string{"missing.css", "js", "", "/", "../" + filepath.Base(outside) + "/secret.txt", "js/../../x"} {
		_, err := read(name)
		assert.ErrorIs(t, err, common.ErrorNotFound, "name %q", name)
	}
}

func TestDirSource_SymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, outside, "secret.txt", "nope")

	if err := os.Symlink(filepath.Join(outside, "secret.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, err := NewDirSource(root).Open(context.Background(), "link.txt")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDirSource_MissingRoot(t *testing.T) {
	_, err := NewDirSource(filepath.Join(t.TempDir(), "nope")).Open(context.Background(), "index.html")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func Test_cleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"index.html", "index.html", true},
		{"/css/site.css", "css/site.css", true},
		{"a/./b.js", "a/b.js", true},
		{"a//b.js", "a/b.js", true},
		{"", "", false},
		{"/", "", false},
		{"..", "", false},
		{"a/../../b", "", false},
	}
	for _, tt := range tests {
		got, ok := cleanName(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
