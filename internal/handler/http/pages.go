package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// newPageHandler serves the built front end from dir. Without a directory
// every page is 404.
func newPageHandler(dir string) http.Handler {
	if dir == "" {
		return http.NotFoundHandler()
	}

	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// /home is served from home.html or home/index.html when present
		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" && path.Ext(clean) == "" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)+".html")); err == nil {
				http.ServeFile(w, r, filepath.Join(dir, filepath.FromSlash(clean)+".html"))
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	h.pages.ServeHTTP(w, r)
}

// notFound answers unknown API paths with JSON and hands everything else
// to the page handler.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api") {
		writeErrorMessage(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	h.servePage(w, r)
}
