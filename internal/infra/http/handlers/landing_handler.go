package handlers

import (
	"io/fs"
	"net/http"
)

// LandingHandler serves the landing page and its assets.
type LandingHandler struct {
	files http.Handler
}

func NewLandingHandler(static fs.FS) *LandingHandler {
	return &LandingHandler{files: http.FileServer(http.FS(static))}
}

func (h *LandingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	h.files.ServeHTTP(w, r)
}
