package book

import (
	"encoding/json"
	"errors"
	"net/http"

	"mybooklist/internal/catalog"
	"mybooklist/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// draftRequest is the payload for create. Update uses Patch directly.
type draftRequest struct {
	Title          string `json:"title" validate:"required,max=500"`
	Author         string `json:"author" validate:"required,max=500"`
	ISBN           string `json:"isbn" validate:"omitempty,isbn"`
	Genre          string `json:"genre"`
	Rating         int    `json:"rating" validate:"gte=0,lte=5"`
	Comment        string `json:"comment"`
	Favorite       bool   `json:"favorite"`
	Description    string `json:"description"`
	PublishedDate  string `json:"published_date"`
	PageCount      int    `json:"page_count" validate:"gte=0"`
	Thumbnail      string `json:"thumbnail" validate:"omitempty,url"`
	MarketplaceURL string `json:"marketplace_url" validate:"omitempty,url"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := catalog.Query{
		Search: query.Get("search"),
		Genre:  query.Get("genre"),
		Sort:   query.Get("sort"),
	}

	books, err := h.service.Browse(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, books, map[string]any{
		"count": len(books),
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, b, nil)
}

// Stats handles GET /books/stats
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, stats, nil)
}

// Create handles POST /books (curator only)
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "Malformed request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book draft", details)
		return
	}

	draft := Draft{
		Title:          req.Title,
		Author:         req.Author,
		ISBN:           req.ISBN,
		Genre:          req.Genre,
		Rating:         req.Rating,
		Comment:        req.Comment,
		Favorite:       req.Favorite,
		Description:    req.Description,
		PublishedDate:  req.PublishedDate,
		PageCount:      req.PageCount,
		Thumbnail:      req.Thumbnail,
		MarketplaceURL: req.MarketplaceURL,
	}

	b, err := h.service.Create(r.Context(), draft, httpx.UserIDFrom(r))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not save the book", nil)
		return
	}
	httpx.JSONSuccessCreated(w, b)
}

// Update handles PATCH /books/{id} (curator only)
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var p Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "Malformed request body", nil)
		return
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book draft",
			[]httpx.ErrorDetail{{Field: "rating", Message: "rating must be between 0 and 5"}})
		return
	}
	if p.PageCount != nil && *p.PageCount < 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book draft",
			[]httpx.ErrorDetail{{Field: "page_count", Message: "page_count must not be negative"}})
		return
	}

	if err := h.service.Update(r.Context(), id, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not update the book", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Delete handles DELETE /books/{id} (curator only). The client is expected to
// have confirmed with the user before this call is made.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not delete the book", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ToggleFavorite handles POST /books/{id}/favorite (curator only)
func (h *HTTPHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	favorite, err := h.service.ToggleFavorite(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not update the favorite flag", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]any{"id": id, "favorite": favorite}, nil)
}
