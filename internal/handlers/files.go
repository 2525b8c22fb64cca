package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/service"
)

// UploadResponse describes a stored upload.
type UploadResponse struct {
	Success bool   `json:"success"`
	FileID  string `json:"fileId"`
	URL     string `json:"url"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Size    int64  `json:"size"`
}

// UploadHandler accepts multipart uploads in the "file" field.
type UploadHandler struct {
	svc      service.BookmarkService
	maxBytes int64
}

// NewUploadHandler creates a new UploadHandler. Bodies above maxBytes are rejected.
func NewUploadHandler(svc service.BookmarkService, maxBytes int64) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes}
}

// ServeHTTP handles POST /api/upload.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		logger.WarnContext(ctx, "upload without file", "error", err)
		writeError(w, http.StatusBadRequest, "No file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	res, err := h.svc.Upload(ctx, service.UploadRequest{
		Name: header.Filename,
		Type: header.Header.Get("Content-Type"),
		Data: data,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to store file")
		return
	}

	writeJSON(ctx, w, http.StatusOK, UploadResponse{
		Success: true,
		FileID:  res.FileID,
		URL:     res.URL,
		Name:    res.Name,
		Type:    res.Type,
		Size:    res.Size,
	})
}

// FileHandler serves stored files by id.
type FileHandler struct {
	svc service.BookmarkService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(svc service.BookmarkService) *FileHandler {
	return &FileHandler{svc: svc}
}

// ServeHTTP handles GET /api/file/{id}.
func (h *FileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	f, err := h.svc.GetFile(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	if err != nil {
		handleServiceError(ctx, w, err, "Malformed file")
		return
	}

	escaped := url.PathEscape(f.Name)
	w.Header().Set("Content-Type", f.Type)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.Header().Set("X-File-Name", escaped)
	w.Header().Set("Content-Disposition", `inline; filename="`+escaped+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(f.Data); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to write file", "file_id", id, "error", err)
	}
}
