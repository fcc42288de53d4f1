package httpserver

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// RegisterStaticRoutes serves the board UI from dir under /. Missing or empty
// dir mounts nothing, leaving / to the router's 404.
func RegisterStaticRoutes(r chi.Router, dir string) {
	if dir == "" {
		return
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		log.Warn().Str("dir", dir).Msg("web-dir-missing")
		return
	}
	fs := http.FileServer(http.Dir(dir))
	r.Get("/web", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	r.Handle("/*", fs)
}
