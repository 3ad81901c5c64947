package search

import (
	"net/http"
	"strings"

	"mybooklist/internal/httpx"
)

type HTTPHandler struct {
	adapter *Adapter
}

func NewHTTPHandler(adapter *Adapter) *HTTPHandler {
	return &HTTPHandler{adapter: adapter}
}

// Search handles GET /search?q=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Query must not be empty",
			[]httpx.ErrorDetail{{Field: "q", Message: "q is required"}})
		return
	}

	outcome := h.adapter.Search(r.Context(), query)

	meta := map[string]any{
		"source": outcome.Source,
		"count":  len(outcome.Results),
	}
	if outcome.Diagnostic != "" {
		meta["diagnostic"] = outcome.Diagnostic
	}
	// An empty result set renders as data: [] so the client can show a
	// distinct "no results" state.
	httpx.JSONSuccess(w, outcome.Results, meta)
}
