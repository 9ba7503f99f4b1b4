// Package site renders the analysis page and handles its form submissions.
package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/okian/pressdetective/internal/adapters/http/api"
	service "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/domain/model"
	"github.com/okian/pressdetective/pkg/logger"
)

// Error constants
var (
	ErrRender = errors.New("page render failed")
)

// maxFormBody caps the analyze form payload.
const maxFormBody = 8 << 10

// Dependencies are the service operations the page needs.
type Dependencies interface {
	Submit(ctx context.Context, sessionID, rawURL string) model.Outcome
	Page(ctx context.Context, sessionID string) (service.Page, error)
}

// Handler serves the page and its form.
type Handler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewHandler creates a page handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{deps: deps, logger: logger.Named("site")}
}

// Register attaches the page, form and asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux, deps Dependencies) {
	if mux == nil {
		panic("mux is nil")
	}
	h := NewHandler(deps)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("/analyze", api.MetricsMiddleware(h.HandleAnalyze, "analyze_form"))
	mux.HandleFunc("/", api.MetricsMiddleware(h.HandleRoot, "page"))
}

// HandleRoot handles GET / and renders the caller's session. Any pending
// notice is shown once and then cleared.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	const op = "site.root"
	if r.URL.Path != "/" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		http.NotFound(w, r)
		return
	}
	sid := api.EnsureSession(w, r)
	page, err := h.deps.Page(r.Context(), sid)
	if err != nil {
		h.logger.Error(r.Context(), "page unavailable", logger.Error(api.Wrap(op, err)))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		h.logger.Error(r.Context(), "page render failed", logger.Error(api.WrapKind(op, ErrRender, err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// HandleAnalyze handles POST /analyze form submissions and redirects back
// to the page, which then shows the outcome.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sid := api.EnsureSession(w, r)
	// The outcome is recorded in the session; the redirected GET renders it.
	_ = h.deps.Submit(r.Context(), sid, r.PostFormValue("url"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
