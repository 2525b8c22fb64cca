package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_bookmark_service.go -package=mocks bookmarkhub/internal/service BookmarkService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/metrics"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/storage"
)

// Data is everything a client loads at startup.
type Data struct {
	Categories   []model.Category     `json:"categories"`
	Items        []model.BookmarkItem `json:"items"`
	Settings     json.RawMessage      `json:"settings"`
	DefaultTheme *model.ThemeConfig   `json:"defaultTheme"`
}

// UploadRequest is a file received by the upload endpoint.
type UploadRequest struct {
	Name string
	Type string
	Data []byte
}

// UploadResult describes a stored upload.
type UploadResult struct {
	FileID string
	URL    string
	Name   string
	Type   string
	Size   int64
}

// FileContent is a decoded stored file ready to be served.
type FileContent struct {
	Name string
	Type string
	Data []byte
}

// BookmarkService is the API's view of the shared namespace.
type BookmarkService interface {
	// GetData returns categories, items, settings and the default theme.
	// Absent keys yield empty lists, empty settings and a nil theme.
	GetData(ctx context.Context) (Data, error)
	// SaveCategories replaces the category list.
	SaveCategories(ctx context.Context, categories []model.Category) error
	// SaveItems replaces the item list.
	SaveItems(ctx context.Context, items []model.BookmarkItem) error
	// Login checks password and returns the token to send back as secret.
	Login(ctx context.Context, password string) (string, error)
	// Authorize checks a secret taken from a request header.
	Authorize(ctx context.Context, token string) error
	// ChangePassword replaces the shared password.
	ChangePassword(ctx context.Context, newPassword string) error
	// SaveDefaultTheme stores the theme every client falls back to.
	SaveDefaultTheme(ctx context.Context, theme model.ThemeConfig) error
	// Upload stores a file under a fresh id.
	Upload(ctx context.Context, req UploadRequest) (UploadResult, error)
	// GetFile returns a stored file decoded from its data URL.
	GetFile(ctx context.Context, id string) (FileContent, error)
	// GetNote returns the note item with the given id.
	GetNote(ctx context.Context, id string) (model.BookmarkItem, error)
}

// bookmarkService implements BookmarkService.
type bookmarkService struct {
	kv              storage.KVStore
	defaultPassword string
	now             func() time.Time
}

// NewBookmarkService creates a new BookmarkService. defaultPassword applies
// until a password has been stored.
func NewBookmarkService(kv storage.KVStore, defaultPassword string) BookmarkService {
	return &bookmarkService{
		kv:              kv,
		defaultPassword: defaultPassword,
		now:             time.Now,
	}
}

// GetData returns the startup payload.
func (s *bookmarkService) GetData(ctx context.Context) (Data, error) {
	data := Data{
		Categories: []model.Category{},
		Items:      []model.BookmarkItem{},
		Settings:   json.RawMessage(`{}`),
	}

	if err := s.getJSON(ctx, storage.KeyCategories, &data.Categories); err != nil {
		return Data{}, err
	}
	if err := s.getJSON(ctx, storage.KeyItems, &data.Items); err != nil {
		return Data{}, err
	}
	if err := s.getJSON(ctx, storage.KeyDefaultTheme, &data.DefaultTheme); err != nil {
		return Data{}, err
	}

	settings, err := s.kv.Get(ctx, storage.KeySettings)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return Data{}, WrapError(err, "failed to load settings")
	case json.Valid(settings):
		data.Settings = settings
	}

	// A stored JSON null must not reach clients as null lists.
	if data.Categories == nil {
		data.Categories = []model.Category{}
	}
	if data.Items == nil {
		data.Items = []model.BookmarkItem{}
	}
	return data, nil
}

// getJSON decodes the value under key into dst, leaving dst untouched when
// the key is absent.
func (s *bookmarkService) getJSON(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return WrapError(err, "failed to load "+key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return WrapError(err, "failed to decode "+key)
	}
	return nil
}

func (s *bookmarkService) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return WrapError(err, "failed to encode "+key)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return WrapError(err, "failed to store "+key)
	}
	return nil
}

// SaveCategories replaces the category list.
func (s *bookmarkService) SaveCategories(ctx context.Context, categories []model.Category) error {
	logger := contextutil.LoggerFromContext(ctx)
	for i, c := range categories {
		if c.ID == "" {
			return &ValidationError{Field: fmt.Sprintf("categories[%d].id", i), Message: "cannot be empty"}
		}
	}
	if categories == nil {
		categories = []model.Category{}
	}
	if err := s.putJSON(ctx, storage.KeyCategories, categories); err != nil {
		logger.ErrorContext(ctx, "failed to save categories", "error", err)
		return err
	}
	logger.InfoContext(ctx, "categories saved", "count", len(categories))
	return nil
}

// SaveItems replaces the item list.
func (s *bookmarkService) SaveItems(ctx context.Context, items []model.BookmarkItem) error {
	logger := contextutil.LoggerFromContext(ctx)
	for i, it := range items {
		if err := it.Validate(); err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				return &ValidationError{Field: fmt.Sprintf("items[%d].%s", i, vErr.Field), Message: vErr.Message}
			}
			return err
		}
	}
	if items == nil {
		items = []model.BookmarkItem{}
	}
	if err := s.putJSON(ctx, storage.KeyItems, items); err != nil {
		logger.ErrorContext(ctx, "failed to save items", "error", err)
		return err
	}
	logger.InfoContext(ctx, "items saved", "count", len(items))
	return nil
}

func (s *bookmarkService) password(ctx context.Context) (string, error) {
	raw, err := s.kv.Get(ctx, storage.KeyPassword)
	if errors.Is(err, storage.ErrNotFound) {
		return s.defaultPassword, nil
	}
	if err != nil {
		return "", WrapError(err, "failed to load password")
	}
	return string(raw), nil
}

// Login checks password. The token is the password itself.
func (s *bookmarkService) Login(ctx context.Context, password string) (string, error) {
	current, err := s.password(ctx)
	if err != nil {
		return "", err
	}
	if password != current {
		metrics.AuthFailure("login")
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "login rejected")
		return "", ErrUnauthorized
	}
	return current, nil
}

// Authorize compares token verbatim with the stored password.
func (s *bookmarkService) Authorize(ctx context.Context, token string) error {
	current, err := s.password(ctx)
	if err != nil {
		return err
	}
	if token != current {
		metrics.AuthFailure("token")
		return ErrUnauthorized
	}
	return nil
}

// ChangePassword replaces the shared password.
func (s *bookmarkService) ChangePassword(ctx context.Context, newPassword string) error {
	if newPassword == "" {
		return &ValidationError{Field: "newPassword", Message: "cannot be empty"}
	}
	if err := s.kv.Put(ctx, storage.KeyPassword, []byte(newPassword)); err != nil {
		return WrapError(err, "failed to store password")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "password changed")
	return nil
}

// SaveDefaultTheme validates and stores the default theme.
func (s *bookmarkService) SaveDefaultTheme(ctx context.Context, theme model.ThemeConfig) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	return s.putJSON(ctx, storage.KeyDefaultTheme, theme)
}

// newFileID returns file_<ms>_<9 random base36 chars>.
func newFileID(now time.Time) string {
	return storage.FileKeyPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + model.RandomBase36(9)
}

// Upload stores the file as a data URL record.
func (s *bookmarkService) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if req.Name == "" {
		req.Name = "file"
	}
	if req.Type == "" {
		req.Type = model.DefaultMIMEType
	}

	now := s.now()
	id := newFileID(now)
	record := model.StoredFile{
		Data:      model.EncodeDataURL(req.Type, req.Data),
		Name:      req.Name,
		Type:      req.Type,
		Size:      int64(len(req.Data)),
		CreatedAt: now.UnixMilli(),
	}
	if err := s.putJSON(ctx, id, record); err != nil {
		logger.ErrorContext(ctx, "failed to store upload", "name", req.Name, "error", err)
		return UploadResult{}, err
	}

	metrics.Upload(len(req.Data))
	logger.InfoContext(ctx, "file uploaded", "file_id", id, "name", req.Name, "size", record.Size)
	return UploadResult{
		FileID: id,
		URL:    "/api/file/" + id,
		Name:   req.Name,
		Type:   req.Type,
		Size:   record.Size,
	}, nil
}

// GetFile loads and decodes a stored file. Values that are a bare data URL
// are accepted as well as JSON records.
func (s *bookmarkService) GetFile(ctx context.Context, id string) (FileContent, error) {
	if !storage.IsFileKey(id) {
		return FileContent{}, ErrNotFound
	}
	raw, err := s.kv.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return FileContent{}, ErrNotFound
	}
	if err != nil {
		return FileContent{}, WrapError(err, "failed to load file")
	}

	stored := model.ParseStoredFile(id, raw)
	mimeType, data, err := model.DecodeDataURL(stored.Data)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "stored file is not a data URL", "file_id", id, "error", err)
		return FileContent{}, WrapError(err, "failed to decode file "+id)
	}

	contentType := stored.Type
	if contentType == model.DefaultMIMEType {
		contentType = mimeType
	}
	return FileContent{Name: stored.Name, Type: contentType, Data: data}, nil
}

// GetNote returns the note item with the given id.
func (s *bookmarkService) GetNote(ctx context.Context, id string) (model.BookmarkItem, error) {
	var items []model.BookmarkItem
	if err := s.getJSON(ctx, storage.KeyItems, &items); err != nil {
		return model.BookmarkItem{}, err
	}
	for _, it := range items {
		if it.ID != id {
			continue
		}
		if it.Type() != model.TypeNote {
			return model.BookmarkItem{}, ErrNotFound
		}
		return it, nil
	}
	return model.BookmarkItem{}, ErrNotFound
}
