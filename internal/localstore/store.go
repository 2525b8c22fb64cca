// Package localstore is the client's on-disk tier: a JSON value cache keyed
// by name and a file database for uploaded files. Both live in one SQLite
// file that is opened on first use.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"bookmarkhub/internal/model"
	"bookmarkhub/internal/storage"
)

// Cache keys.
const (
	KeyCategories   = "categories"
	KeyItems        = "items"
	KeyTheme        = "theme"
	KeyUserTheme    = "user-theme"
	KeyDefaultTheme = "default-theme"
	KeyPassword     = "password"
	KeyAuth         = "auth"
)

// ErrNotFound is returned for an absent key or file.
var ErrNotFound = errors.New("not found in local store")

// File is a decoded file from the file database.
type File struct {
	ID        string
	Name      string
	Type      string
	Data      []byte
	CreatedAt int64
}

// Store is safe for concurrent use.
type Store struct {
	path string
	now  func() time.Time

	mu    sync.Mutex
	db    *sql.DB
	kv    storage.KVStore
	files storage.FileStore
}

// New returns a store backed by the SQLite file at path. Nothing is opened
// until the first call that needs the database.
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// NewWithStores returns a store over already opened repositories.
func NewWithStores(kv storage.KVStore, files storage.FileStore) *Store {
	return &Store{kv: kv, files: files, now: time.Now}
}

// open memoizes the database handle. A failed open is retried on the next call.
func (s *Store) open() (storage.KVStore, storage.FileStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv, s.files, nil
	}
	db, err := storage.New(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("open local store %s: %w", s.path, err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate local store: %w", err)
	}
	s.db = db
	s.kv = storage.NewKVRepo(db)
	s.files = storage.NewFileRepo(db)
	return s.kv, s.files, nil
}

// Close releases the database handle if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db, s.kv, s.files = nil, nil, nil
	return err
}

// Load decodes the JSON value under key into dst. It returns ErrNotFound
// when the key is absent.
func (s *Store) Load(ctx context.Context, key string, dst any) error {
	kv, _, err := s.open()
	if err != nil {
		return err
	}
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

// Save stores v as JSON under key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	kv, _, err := s.open()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, raw)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	kv, _, err := s.open()
	if err != nil {
		return err
	}
	return kv.Delete(ctx, key)
}

// NewFileID returns file-<ms>-<9 random base36 chars>.
func (s *Store) NewFileID() string {
	return "file-" + strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + model.RandomBase36(9)
}

// SaveFile stores data under a fresh id and returns it.
func (s *Store) SaveFile(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	id := s.NewFileID()
	if err := s.PutFile(ctx, id, name, mimeType, data); err != nil {
		return "", err
	}
	return id, nil
}

// PutFile stores data under id, replacing any previous file.
func (s *Store) PutFile(ctx context.Context, id, name, mimeType string, data []byte) error {
	_, files, err := s.open()
	if err != nil {
		return err
	}
	if mimeType == "" {
		mimeType = model.DefaultMIMEType
	}
	return files.Put(ctx, &storage.FileRecord{
		ID:        id,
		Name:      name,
		Type:      mimeType,
		Data:      model.EncodeDataURL(mimeType, data),
		CreatedAt: s.now().UnixMilli(),
	})
}

// GetFile loads and decodes a file.
func (s *Store) GetFile(ctx context.Context, id string) (File, error) {
	_, files, err := s.open()
	if err != nil {
		return File{}, err
	}
	rec, err := files.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return File{}, ErrNotFound
	}
	if err != nil {
		return File{}, err
	}
	mimeType, data, err := model.DecodeDataURL(rec.Data)
	if err != nil {
		return File{}, fmt.Errorf("file %s: %w", id, err)
	}
	if rec.Type != "" {
		mimeType = rec.Type
	}
	return File{ID: rec.ID, Name: rec.Name, Type: mimeType, Data: data, CreatedAt: rec.CreatedAt}, nil
}

// DeleteFile removes a file.
func (s *Store) DeleteFile(ctx context.Context, id string) error {
	_, files, err := s.open()
	if err != nil {
		return err
	}
	return files.Delete(ctx, id)
}

// ListFileIDs returns every stored file id.
func (s *Store) ListFileIDs(ctx context.Context) ([]string, error) {
	_, files, err := s.open()
	if err != nil {
		return nil, err
	}
	return files.ListIDs(ctx)
}
