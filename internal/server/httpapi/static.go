package httpapi

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrijs2005/neontetris/internal/common"
)

var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
}

func contentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "text/plain"
}

// serveStatic is the router fallback. Paths under /api that matched no route
// are never looked up as files.
func (s *HTTPServer) serveStatic(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") || s.assets == nil {
		writeNotFound(w)
		return
	}

	name := r.URL.Path
	if name == "/" || name == "" {
		name = "index.html"
	}

	f, err := s.assets.Open(r.Context(), name)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(r.Context(), "asset read failed", "name", name, "error", err)
		}
		writeNotFound(w)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", contentType(name))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Debug(r.Context(), "asset write interrupted", "name", name, "error", err)
	}
}
