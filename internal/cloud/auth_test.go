package cloud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/remote"
)

func TestStore_LocalLogin(t *testing.T) {
	f := newFixture(t)
	f.offline()
	s := f.store()
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	assert.ErrorIs(t, s.Login(ctx, "wrong"), ErrUnauthorized)
	assert.False(t, s.Session().LoggedIn())

	require.NoError(t, s.Login(ctx, DefaultPassword))
	assert.Equal(t, DefaultPassword, s.Session().Token())

	assert.ErrorIs(t, s.ChangePassword(ctx, "not-the-token", "n3w"), ErrUnauthorized)
	var vErr *model.ValidationError
	assert.ErrorAs(t, s.ChangePassword(ctx, DefaultPassword, " "), &vErr)

	require.NoError(t, s.ChangePassword(ctx, DefaultPassword, "n3w"))
	assert.Equal(t, "n3w", s.Session().Token())

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.Session().LoggedIn())
	assert.ErrorIs(t, s.Login(ctx, DefaultPassword), ErrUnauthorized)
	require.NoError(t, s.Login(ctx, "n3w"))
}

func TestStore_LoginIsRemembered(t *testing.T) {
	f := newFixture(t)
	f.offline()
	ctx := context.Background()

	s := f.store()
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Login(ctx, DefaultPassword))

	again := f.store()
	require.NoError(t, again.Load(ctx))
	assert.Equal(t, DefaultPassword, again.Session().Token())
}

func TestStore_ChangePasswordRequiresLogin(t *testing.T) {
	f := newFixture(t)
	f.offline()
	s := f.store()
	require.NoError(t, s.Load(context.Background()))

	assert.ErrorIs(t, s.ChangePassword(context.Background(), "", "x"), ErrUnauthorized)
}

func TestStore_RemoteLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.online(remote.Data{})
	s := f.store()
	require.NoError(t, s.Load(ctx))

	gomock.InOrder(
		f.api.EXPECT().Login(gomock.Any(), "bad").Return("", &remote.APIError{StatusCode: 401, Message: "Wrong password"}),
		f.api.EXPECT().Login(gomock.Any(), "admin").Return("admin", nil),
		f.api.EXPECT().ChangePassword(gomock.Any(), "s3cret").Return(nil),
	)

	assert.ErrorIs(t, s.Login(ctx, "bad"), ErrUnauthorized)
	require.NoError(t, s.Login(ctx, "admin"))
	assert.True(t, s.Session().CanSync())

	require.NoError(t, s.ChangePassword(ctx, "admin", "s3cret"))
	assert.Equal(t, "s3cret", s.Session().Token())

	var pw string
	assert.ErrorIs(t, f.local.Load(ctx, localstore.KeyPassword, &pw), localstore.ErrNotFound,
		"cloud mode leaves the local password alone")
}

func TestStore_RemoteLoginTransportError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.online(remote.Data{})
	s := f.store()
	require.NoError(t, s.Load(ctx))

	f.api.EXPECT().Login(gomock.Any(), "admin").Return("", errOffline)

	err := s.Login(ctx, "admin")
	assert.ErrorIs(t, err, errOffline)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
