package handlers

import (
	"errors"
	"net/http"

	"bookmarkhub/internal/service"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the token to send as Authorization header.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// PasswordRequest is the body of POST /api/auth/password.
type PasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// LoginHandler checks the shared password.
type LoginHandler struct {
	svc service.BookmarkService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc service.BookmarkService) *LoginHandler {
	return &LoginHandler{svc: svc}
}

// ServeHTTP handles POST /api/auth/login.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		handleServiceError(ctx, w, err, "Invalid request body")
		return
	}
	token, err := h.svc.Login(ctx, req.Password)
	if errors.Is(err, service.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "Wrong password")
		return
	}
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to log in")
		return
	}
	writeJSON(ctx, w, http.StatusOK, LoginResponse{Success: true, Token: token})
}

// PasswordHandler changes the shared password.
type PasswordHandler struct {
	svc service.BookmarkService
}

// NewPasswordHandler creates a new PasswordHandler.
func NewPasswordHandler(svc service.BookmarkService) *PasswordHandler {
	return &PasswordHandler{svc: svc}
}

// ServeHTTP handles POST /api/auth/password.
func (h *PasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req PasswordRequest
	if err := decodeBody(r, &req); err != nil {
		handleServiceError(ctx, w, err, "Invalid request body")
		return
	}
	if err := h.svc.ChangePassword(ctx, req.NewPassword); err != nil {
		handleServiceError(ctx, w, err, "Failed to change password")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}
