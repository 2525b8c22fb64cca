package handlers

import (
	"net/http"
	"time"

	"bookmarkhub/internal/model"
	"bookmarkhub/internal/service"
)

// PingResponse is the reachability probe answer.
type PingResponse struct {
	OK        bool  `json:"ok"`
	Timestamp int64 `json:"timestamp"`
}

// PingHandler answers reachability probes.
type PingHandler struct {
	now func() time.Time
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{now: time.Now}
}

// ServeHTTP handles GET /api/ping.
func (h *PingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, PingResponse{OK: true, Timestamp: h.now().UnixMilli()})
}

// DataHandler serves the full startup payload.
type DataHandler struct {
	svc service.BookmarkService
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(svc service.BookmarkService) *DataHandler {
	return &DataHandler{svc: svc}
}

// ServeHTTP handles GET /api/data.
func (h *DataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := h.svc.GetData(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load data")
		return
	}
	writeJSON(ctx, w, http.StatusOK, data)
}

// CategoriesHandler replaces the category list.
type CategoriesHandler struct {
	svc service.BookmarkService
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(svc service.BookmarkService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// ServeHTTP handles POST /api/categories.
func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var categories []model.Category
	if err := decodeBody(r, &categories); err != nil {
		handleServiceError(ctx, w, err, "Invalid request body")
		return
	}
	if err := h.svc.SaveCategories(ctx, categories); err != nil {
		handleServiceError(ctx, w, err, "Failed to save categories")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

// ItemsHandler replaces the item list.
type ItemsHandler struct {
	svc service.BookmarkService
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(svc service.BookmarkService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// ServeHTTP handles POST /api/items.
func (h *ItemsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var items []model.BookmarkItem
	if err := decodeBody(r, &items); err != nil {
		handleServiceError(ctx, w, err, "Invalid request body")
		return
	}
	if err := h.svc.SaveItems(ctx, items); err != nil {
		handleServiceError(ctx, w, err, "Failed to save items")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

// DefaultThemeHandler stores the default theme.
type DefaultThemeHandler struct {
	svc service.BookmarkService
}

// NewDefaultThemeHandler creates a new DefaultThemeHandler.
func NewDefaultThemeHandler(svc service.BookmarkService) *DefaultThemeHandler {
	return &DefaultThemeHandler{svc: svc}
}

// ServeHTTP handles POST /api/theme/default.
func (h *DefaultThemeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var theme model.ThemeConfig
	if err := decodeBody(r, &theme); err != nil {
		handleServiceError(ctx, w, err, "Invalid request body")
		return
	}
	if err := h.svc.SaveDefaultTheme(ctx, theme); err != nil {
		handleServiceError(ctx, w, err, "Failed to save theme")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}
