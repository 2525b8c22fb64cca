package cloud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/remote"
)

// Login checks password against the remote API in cloud mode, or against
// the local password otherwise, and keeps the token on success.
func (s *Store) Login(ctx context.Context, password string) error {
	logger := contextutil.LoggerFromContext(ctx)

	var token string
	if s.api != nil && s.sess.Cloud() {
		t, err := s.api.Login(ctx, password)
		if remote.IsUnauthorized(err) {
			return ErrUnauthorized
		}
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		token = t
	} else {
		current, err := s.localPassword(ctx)
		if err != nil {
			return err
		}
		if password != current {
			return ErrUnauthorized
		}
		token = password
	}

	s.sess.SetToken(token)
	if err := s.local.Save(ctx, localstore.KeyAuth, token); err != nil {
		logger.WarnContext(ctx, "failed to remember login", "error", err)
	}
	logger.InfoContext(ctx, "logged in", "cloud", s.sess.Cloud())
	return nil
}

// Logout forgets the token.
func (s *Store) Logout(ctx context.Context) error {
	s.sess.Clear()
	return s.local.Remove(ctx, localstore.KeyAuth)
}

// ChangePassword replaces the password. oldPassword must match the token of
// the current login.
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if !s.sess.LoggedIn() || oldPassword != s.sess.Token() {
		return ErrUnauthorized
	}
	if strings.TrimSpace(newPassword) == "" {
		return &model.ValidationError{Field: "newPassword", Message: "cannot be empty"}
	}

	if s.api != nil && s.sess.Cloud() {
		if err := s.api.ChangePassword(ctx, newPassword); err != nil {
			if remote.IsUnauthorized(err) {
				return ErrUnauthorized
			}
			return fmt.Errorf("change password: %w", err)
		}
	} else if err := s.local.Save(ctx, localstore.KeyPassword, newPassword); err != nil {
		return fmt.Errorf("save password: %w", err)
	}

	s.sess.SetToken(newPassword)
	if err := s.local.Save(ctx, localstore.KeyAuth, newPassword); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to remember login", "error", err)
	}
	return nil
}

func (s *Store) localPassword(ctx context.Context) (string, error) {
	var pw string
	err := s.local.Load(ctx, localstore.KeyPassword, &pw)
	if errors.Is(err, localstore.ErrNotFound) || (err == nil && pw == "") {
		return DefaultPassword, nil
	}
	if err != nil {
		return "", fmt.Errorf("read local password: %w", err)
	}
	return pw, nil
}
