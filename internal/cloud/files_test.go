package cloud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bookmarkhub/internal/items"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/remote"
)

func TestStore_SaveFileLocal(t *testing.T) {
	f := newFixture(t)
	f.offline()
	ctx := context.Background()
	s := f.store()
	require.NoError(t, s.Load(ctx))

	id, err := s.SaveFile(ctx, "a.txt", "text/plain", []byte("hi"))
	require.NoError(t, err)
	assert.Regexp(t, `^file-\d+-[0-9a-z]{9}$`, id)

	got, err := s.GetFile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), got.Data)

	_, err = s.GetFile(ctx, "file-missing")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStore_SaveFileUploads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.online(remote.Data{})
	s := f.store()
	require.NoError(t, s.Load(ctx))
	s.Session().SetToken("admin")

	f.api.EXPECT().Upload(gomock.Any(), "a.txt", "text/plain", []byte("hi")).
		Return(remote.Upload{FileID: "file_1_abc", Name: "a.txt"}, nil)

	id, err := s.SaveFile(ctx, "a.txt", "text/plain", []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "file_1_abc", id)

	// Cached under the remote id: no fetch needed.
	got, err := s.GetFile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", got.Name)
}

func TestStore_SaveFileUploadFailureKeepsLocal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.online(remote.Data{})
	s := f.store()
	require.NoError(t, s.Load(ctx))
	s.Session().SetToken("admin")

	f.api.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(remote.Upload{}, &remote.APIError{StatusCode: 413, Message: "File too large"})

	id, err := s.SaveFile(ctx, "big.bin", "", []byte{1})
	require.NoError(t, err)
	assert.Regexp(t, `^file-`, id)
}

func TestStore_GetFileFetchesAndCaches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.online(remote.Data{})
	s := f.store()
	require.NoError(t, s.Load(ctx))

	f.api.EXPECT().FetchFile(gomock.Any(), "file_9_x").
		Return(remote.File{Name: "r.txt", Type: "text/plain", Data: []byte("remote")}, nil).Times(1)
	f.api.EXPECT().FetchFile(gomock.Any(), "file_gone").
		Return(remote.File{}, &remote.APIError{StatusCode: 404, Message: "File not found"})

	for i := 0; i < 2; i++ {
		got, err := s.GetFile(ctx, "file_9_x")
		require.NoError(t, err)
		assert.Equal(t, []byte("remote"), got.Data)
	}

	_, err := s.GetFile(ctx, "file_gone")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStore_ItemFileLegacy(t *testing.T) {
	f := newFixture(t)
	f.offline()
	ctx := context.Background()
	s := f.store()
	require.NoError(t, s.Load(ctx))

	it := model.BookmarkItem{ID: "old", Title: "Old", Payload: model.File{
		Name:       "old.txt",
		LegacyData: model.EncodeDataURL("text/plain", []byte("inline")),
	}}
	got, err := s.ItemFile(ctx, it)
	require.NoError(t, err)
	assert.Equal(t, "old.txt", got.Name)
	assert.Equal(t, "text/plain", got.Type)
	assert.Equal(t, []byte("inline"), got.Data)

	_, err = s.ItemFile(ctx, model.BookmarkItem{ID: "n", Payload: model.Note{}})
	assert.Error(t, err)
}

func TestStore_CleanupUnusedFiles(t *testing.T) {
	f := newFixture(t)
	f.offline()
	ctx := context.Background()
	s := f.store()
	require.NoError(t, s.Load(ctx))

	keep, err := s.SaveFile(ctx, "keep.txt", "text/plain", []byte("k"))
	require.NoError(t, err)
	_, err = s.SaveFile(ctx, "drop.txt", "text/plain", []byte("d"))
	require.NoError(t, err)
	_, err = s.AddItem(items.Draft{Title: "Keep", CategoryID: "cat-1", Payload: model.File{Name: "keep.txt", FileID: keep}})
	require.NoError(t, err)

	n, err := s.CleanupUnusedFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	left, err := f.local.ListFileIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, left)
}
