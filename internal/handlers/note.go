package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/preview"
	"bookmarkhub/internal/service"
)

// NoteHandler serves note items as rendered HTML pages.
type NoteHandler struct {
	svc      service.BookmarkService
	renderer *preview.Renderer
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc service.BookmarkService, renderer *preview.Renderer) *NoteHandler {
	return &NoteHandler{svc: svc, renderer: renderer}
}

// ServeHTTP handles GET /api/notes/{id}.
func (h *NoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	item, err := h.svc.GetNote(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to load note", "id", id, "error", err)
		http.Error(w, "failed to load note", http.StatusInternalServerError)
		return
	}

	note, _ := item.Payload.(model.Note)
	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, item.Title, note.Content); err != nil {
		logger.ErrorContext(ctx, "failed to render note", "id", id, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
