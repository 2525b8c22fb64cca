package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_store.go -package=mocks bookmarkhub/internal/storage FileStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FileStore defines the interface for the client-side file database.
type FileStore interface {
	// Put inserts or replaces a file record.
	Put(ctx context.Context, file *FileRecord) error
	// Get returns the file with the given id.
	// Returns nil and ErrNotFound if not found.
	Get(ctx context.Context, id string) (*FileRecord, error)
	// Delete removes a file. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	// ListIDs returns every stored file id.
	ListIDs(ctx context.Context) ([]string, error)
}

// FileRepo provides methods for file operations.
// It implements the FileStore interface.
type FileRepo struct {
	db *sql.DB
}

// NewFileRepo creates a new FileRepo.
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// Put inserts or replaces a file record.
func (r *FileRepo) Put(ctx context.Context, file *FileRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO files (id, name, type, data, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		 name = excluded.name, type = excluded.type, data = excluded.data, created_at = excluded.created_at`,
		file.ID, file.Name, file.Type, file.Data, file.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put file: %w", err)
	}
	return nil
}

// Get returns the file with the given id.
func (r *FileRepo) Get(ctx context.Context, id string) (*FileRecord, error) {
	var f FileRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, type, data, created_at FROM files WHERE id = ?", id,
	).Scan(&f.ID, &f.Name, &f.Type, &f.Data, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query file: %w", err)
	}
	return &f, nil
}

// Delete removes a file.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ListIDs returns every stored file id, oldest first.
func (r *FileRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM files ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan file id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}
	return ids, nil
}
