package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/pressdetective/internal/domain/analysis"
	"github.com/okian/pressdetective/internal/domain/model"
	"github.com/okian/pressdetective/pkg/logger"
)

// StaleLeaderboardHeader is set when an analysis succeeded but the
// leaderboard refresh behind it did not.
const StaleLeaderboardHeader = "X-Leaderboard-Stale"

// maxAnalyzeBody caps the request body for POST /api/analyze.
const maxAnalyzeBody = 8 << 10

// AnalyzeHandler handles analyze requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// HandleAnalyze handles POST /api/analyze requests.
// Failure causes stay in the logs; clients only see the generic notice.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalyzeBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	sid := EnsureSession(w, r)
	out := h.deps.Analyze(r.Context(), sid, req.URL)
	switch {
	case errors.Is(out.Err, analysis.ErrEmptyURL):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "empty_url", Message: string(model.NoticeEmptyURL)})
		return
	case !out.OK():
		logger.Get().Warn(r.Context(), "analyze request failed",
			logger.String("session", sid),
			logger.Error(WrapKind(op, ErrUpstream, out.Err)),
		)
		writeJSON(w, http.StatusBadGateway, errorResponse{Code: "analyze_failed", Message: string(model.NoticeAnalyzeFailed)})
		return
	}
	if out.LeaderboardErr != nil {
		w.Header().Set(StaleLeaderboardHeader, "true")
	}
	writeJSON(w, http.StatusOK, out.Result)
}
