package cloud

import (
	"context"
	"fmt"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/model"
)

// Theme returns the effective theme.
func (s *Store) Theme() model.ThemeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// DefaultTheme returns the admin default theme, if one is set.
func (s *Store) DefaultTheme() (model.ThemeConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.defaultTheme == nil {
		return model.ThemeConfig{}, false
	}
	return *s.defaultTheme, true
}

// SetTheme stores the viewer's own theme locally.
func (s *Store) SetTheme(ctx context.Context, t model.ThemeConfig) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()

	if err := s.local.Save(ctx, localstore.KeyTheme, t); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := s.local.Save(ctx, localstore.KeyUserTheme, t); err != nil {
		return fmt.Errorf("save user theme: %w", err)
	}
	return nil
}

// SetDefaultTheme stores the theme every viewer starts from. It is written
// to the remote API when syncing, and always cached locally.
func (s *Store) SetDefaultTheme(ctx context.Context, t model.ThemeConfig) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if s.api != nil && s.sess.CanSync() {
		if err := s.api.SaveDefaultTheme(ctx, t); err != nil {
			return fmt.Errorf("save default theme: %w", err)
		}
	}
	if err := s.local.Save(ctx, localstore.KeyDefaultTheme, t); err != nil {
		return fmt.Errorf("cache default theme: %w", err)
	}
	s.mu.Lock()
	s.defaultTheme = &t
	s.mu.Unlock()
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "default theme saved", "mode", t.Mode)
	return nil
}

// ResetTheme drops the viewer's theme and falls back to the default theme,
// or the built-in one when no default is set.
func (s *Store) ResetTheme(ctx context.Context) (model.ThemeConfig, error) {
	s.mu.Lock()
	t := model.DefaultTheme()
	if s.defaultTheme != nil {
		t = *s.defaultTheme
	}
	s.theme = t
	s.mu.Unlock()

	if err := s.local.Remove(ctx, localstore.KeyUserTheme); err != nil {
		return t, fmt.Errorf("remove user theme: %w", err)
	}
	if err := s.local.Save(ctx, localstore.KeyTheme, t); err != nil {
		return t, fmt.Errorf("save theme: %w", err)
	}
	return t, nil
}
