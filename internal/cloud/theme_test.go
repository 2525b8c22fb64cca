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

func darkTheme() model.ThemeConfig {
	t := model.DefaultTheme()
	t.Mode = model.ModeDark
	t.DarkBackground = model.BackgroundConfig{Type: model.BackgroundSolid, Value: "#000"}
	return t
}

func TestStore_ThemeRoundTripLocal(t *testing.T) {
	f := newFixture(t)
	f.offline()
	ctx := context.Background()

	s := f.store()
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.SetTheme(ctx, darkTheme()))

	again := f.store()
	require.NoError(t, again.Load(ctx))
	assert.Equal(t, darkTheme(), again.Theme())

	reset, err := again.ResetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTheme(), reset)
	var stored model.ThemeConfig
	assert.ErrorIs(t, f.local.Load(ctx, localstore.KeyUserTheme, &stored), localstore.ErrNotFound)
}

func TestStore_ThemeRejectsInvalid(t *testing.T) {
	f := newFixture(t)
	f.offline()
	s := f.store()
	require.NoError(t, s.Load(context.Background()))

	bad := model.DefaultTheme()
	bad.Mode = "sepia"
	var vErr *model.ValidationError
	assert.ErrorAs(t, s.SetTheme(context.Background(), bad), &vErr)
	assert.Equal(t, model.DefaultTheme(), s.Theme())
}

func TestStore_ThemeCloud(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	def := darkTheme()

	// The default theme comes from the server, the viewer's own theme wins.
	light := model.DefaultTheme()
	light.Mode = model.ModeLight
	require.NoError(t, f.local.Save(ctx, localstore.KeyUserTheme, light))

	f.online(remote.Data{DefaultTheme: &def})
	s := f.store()
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, light, s.Theme())
	got, ok := s.DefaultTheme()
	require.True(t, ok)
	assert.Equal(t, def, got)

	reset, err := s.ResetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, def, reset, "reset falls back to the server default")
}

func TestStore_SetDefaultTheme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.online(remote.Data{})
	s := f.store()
	require.NoError(t, s.Load(ctx))

	// Not logged in: only the local cache is written.
	require.NoError(t, s.SetDefaultTheme(ctx, darkTheme()))

	s.Session().SetToken("admin")
	f.api.EXPECT().SaveDefaultTheme(gomock.Any(), darkTheme()).Return(&remote.APIError{StatusCode: 500, Message: "Server error"})
	assert.Error(t, s.SetDefaultTheme(ctx, darkTheme()), "foreground failures surface")

	f.api.EXPECT().SaveDefaultTheme(gomock.Any(), darkTheme()).Return(nil)
	require.NoError(t, s.SetDefaultTheme(ctx, darkTheme()))

	var cached model.ThemeConfig
	require.NoError(t, f.local.Load(ctx, localstore.KeyDefaultTheme, &cached))
	assert.Equal(t, darkTheme(), cached)
}
