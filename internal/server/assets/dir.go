package assets

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/dmitrijs2005/neontetris/internal/common"
)

// DirSource serves files from a directory on local disk. Lookups go through
// os.Root, so symlinks cannot lead outside it either.
type DirSource struct {
	Root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (d *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	name, ok := cleanName(name)
	if !ok {
		return nil, common.ErrorNotFound
	}

	root, err := os.OpenRoot(d.Root)
	if err != nil {
		return nil, notFoundOr(err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, notFoundOr(err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, common.ErrorNotFound
	}

	return f, nil
}

// cleanName turns a request path into a root-relative file name. Names that
// would climb above the root are rejected rather than clamped.
func cleanName(name string) (string, bool) {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "", false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return "", false
		}
	}
	clean := path.Clean(name)
	if clean == "." || strings.HasPrefix(clean, "/") {
		return "", false
	}
	return clean, true
}

func notFoundOr(err error) error {
	if errors.Is(err, os.ErrNotExist) || isEscape(err) {
		return common.ErrorNotFound
	}
	return err
}

// isEscape reports the os.Root error for a path leaving the root. It is not
// exported as a sentinel, so match the *PathError text.
func isEscape(err error) bool {
	var pe *os.PathError
	return errors.As(err, &pe) && strings.Contains(pe.Err.Error(), "escapes")
}
