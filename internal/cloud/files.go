package cloud

import (
	"context"
	"errors"
	"fmt"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/remote"
)

// SaveFile stores an uploaded file and returns its id. When syncing, the
// file goes to the remote API and is cached locally under the remote id.
// Otherwise, or when the upload fails, it is stored locally only.
func (s *Store) SaveFile(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if s.api != nil && s.sess.CanSync() {
		up, err := s.api.Upload(ctx, name, mimeType, data)
		if err == nil {
			if err := s.local.PutFile(ctx, up.FileID, name, mimeType, data); err != nil {
				logger.WarnContext(ctx, "failed to cache uploaded file", "file_id", up.FileID, "error", err)
			}
			return up.FileID, nil
		}
		logger.WarnContext(ctx, "upload failed, keeping file locally", "name", name, "error", err)
	}

	id, err := s.local.SaveFile(ctx, name, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}
	return id, nil
}

// GetFile returns a file from the local file database, falling back to the
// remote API in cloud mode. Remote hits are cached locally.
func (s *Store) GetFile(ctx context.Context, id string) (localstore.File, error) {
	f, err := s.local.GetFile(ctx, id)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, localstore.ErrNotFound) {
		return localstore.File{}, err
	}
	if s.api == nil || !s.sess.Cloud() {
		return localstore.File{}, ErrFileNotFound
	}

	rf, err := s.api.FetchFile(ctx, id)
	if remote.IsNotFound(err) {
		return localstore.File{}, ErrFileNotFound
	}
	if err != nil {
		return localstore.File{}, fmt.Errorf("fetch file %s: %w", id, err)
	}
	if err := s.local.PutFile(ctx, id, rf.Name, rf.Type, rf.Data); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to cache fetched file", "file_id", id, "error", err)
	}
	return localstore.File{ID: id, Name: rf.Name, Type: rf.Type, Data: rf.Data}, nil
}

// ItemFile returns the content of a file item. Items that still carry
// their data inline are decoded without touching the file database.
func (s *Store) ItemFile(ctx context.Context, it model.BookmarkItem) (localstore.File, error) {
	p, ok := it.Payload.(model.File)
	if !ok {
		return localstore.File{}, fmt.Errorf("item %s is a %s, not a file", it.ID, it.Type())
	}
	if p.FileID != "" {
		f, err := s.GetFile(ctx, p.FileID)
		if err == nil || p.LegacyData == "" {
			return f, err
		}
	}
	mimeType, data, err := model.DecodeDataURL(p.LegacyData)
	if err != nil {
		return localstore.File{}, err
	}
	if p.MIMEType != "" {
		mimeType = p.MIMEType
	}
	return localstore.File{ID: p.FileID, Name: p.Name, Type: mimeType, Data: data, CreatedAt: it.CreatedAt}, nil
}

// CleanupUnusedFiles deletes local files no item refers to and returns how
// many were deleted.
func (s *Store) CleanupUnusedFiles(ctx context.Context) (int, error) {
	s.mu.Lock()
	used := s.items.UsedFileIDs()
	s.mu.Unlock()

	ids, err := s.local.ListFileIDs(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		if _, ok := used[id]; ok {
			continue
		}
		if err := s.local.DeleteFile(ctx, id); err != nil {
			return n, fmt.Errorf("delete file %s: %w", id, err)
		}
		n++
	}
	if n > 0 {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "removed unused files", "count", n)
	}
	return n, nil
}
