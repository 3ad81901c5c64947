package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"mybooklist/internal/httpx"
)

type HTTPHandler struct {
	gatekeeper *Gatekeeper
}

func NewHTTPHandler(gatekeeper *Gatekeeper) *HTTPHandler {
	return &HTTPHandler{gatekeeper: gatekeeper}
}

type loginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	ExpiresIn int    `json:"expires_in"`
}

// Login handles POST /auth/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "Malformed request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid login request", details)
		return
	}

	token, id, err := h.gatekeeper.SignIn(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, ErrNotCurator) {
			httpx.JSONError(w, http.StatusForbidden, "NOT_CURATOR", "This catalog is managed by a single curator", nil)
			return
		}
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Sign-in failed", nil)
		return
	}

	httpx.JSONSuccess(w, loginResponse{
		Token:     token,
		Email:     id.Email,
		Name:      id.Name,
		ExpiresIn: int(h.gatekeeper.SessionTTL().Seconds()),
	}, nil)
}

// Logout handles POST /auth/logout (curator only)
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gatekeeper.SignOut()
	httpx.JSONSuccessNoContent(w)
}
