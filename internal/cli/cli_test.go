package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "bookmarkhub/internal/http"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/service"
	"bookmarkhub/internal/storage"
)

func init() {
	// Silence the test server's request logs
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type runner struct {
	t     *testing.T
	flags []string
}

// newRunner isolates the environment and returns a runner whose commands
// share one cache database.
func newRunner(t *testing.T, flags ...string) *runner {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"BOOKMARKS_API_URL", "BOOKMARKS_CACHE_PATH", "BOOKMARKS_PING_TIMEOUT", "BOOKMARKS_SAVE_DEBOUNCE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	cache := filepath.Join(t.TempDir(), "cache.db")
	return &runner{t: t, flags: append([]string{"--cache", cache}, flags...)}
}

func (r *runner) run(args ...string) (string, string, int) {
	r.t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), append(append([]string{}, r.flags...), args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func (r *runner) ok(args ...string) string {
	r.t.Helper()
	out, errOut, code := r.run(args...)
	require.Equal(r.t, 0, code, "bookmarks %s: %s", strings.Join(args, " "), errOut)
	return out
}

func TestCLI_CategoriesAndItems(t *testing.T) {
	r := newRunner(t, "--offline")

	out := r.ok("tree")
	assert.Contains(t, out, "Work  [cat-1]")
	assert.Contains(t, out, "  Project docs  [cat-1-1]")

	id := strings.TrimSpace(r.ok("category", "add", "Reading", "--parent", "cat-3"))
	require.NotEmpty(t, id)

	itemID := strings.TrimSpace(r.ok("item", "add", "--category", id, "--title", "Go", "--url", "https://go.dev"))
	require.NotEmpty(t, itemID)

	var listed []model.BookmarkItem
	require.NoError(t, json.Unmarshal([]byte(r.ok("--json", "item", "ls", "--category", "cat-3")), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, itemID, listed[0].ID)
	assert.Equal(t, model.Website{URL: "https://go.dev"}, listed[0].Payload)

	r.ok("category", "drag", "cat-3", "--before", "cat-1")
	out = r.ok("tree")
	assert.True(t, strings.HasPrefix(out, "Leisure"), out)

	_, errOut, code := r.run("category", "drag", "cat-3", "--inside", id)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "cannot drop")

	out = r.ok("category", "rm", "cat-3")
	assert.Contains(t, out, "1 item(s)")
	assert.NotContains(t, r.ok("tree"), "Reading")
}

func TestCLI_ItemEditAndReorder(t *testing.T) {
	r := newRunner(t, "--offline")

	r.ok("item", "edit", "item-3", "--title", "Tailwind docs")
	assert.Contains(t, r.ok("item", "ls", "--type", "website"), "Tailwind docs")

	_, _, code := r.run("item", "edit", "item-3", "--content", "not a website")
	assert.Equal(t, 1, code)

	r.ok("item", "reorder", "item-3", "item-2", "--category", "cat-2-1")
	var listed []model.BookmarkItem
	require.NoError(t, json.Unmarshal([]byte(r.ok("--json", "item", "ls", "--category", "cat-2")), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "item-3", listed[0].ID)

	r.ok("item", "rm", "item-3")
	_, _, code = r.run("item", "rm", "item-3")
	assert.Equal(t, 1, code)
}

func TestCLI_LocalAuth(t *testing.T) {
	r := newRunner(t, "--offline")

	_, errOut, code := r.run("login", "wrong")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "wrong password")

	assert.Contains(t, r.ok("login", "admin"), "logged in (local)")
	assert.Contains(t, r.ok("status"), "logged in: true")

	r.ok("passwd", "admin", "s3cret")
	r.ok("logout")
	_, _, code = r.run("login", "admin")
	assert.Equal(t, 1, code)
	r.ok("login", "s3cret")
}

func TestCLI_Theme(t *testing.T) {
	r := newRunner(t, "--offline")

	r.ok("theme", "set", "--mode", "dark", "--dark", "solid:#000")
	var th model.ThemeConfig
	require.NoError(t, json.Unmarshal([]byte(r.ok("--json", "theme")), &th))
	assert.Equal(t, model.ModeDark, th.Mode)
	assert.Equal(t, model.BackgroundConfig{Type: model.BackgroundSolid, Value: "#000"}, th.DarkBackground)

	_, _, code := r.run("theme", "set", "--mode", "sepia")
	assert.Equal(t, 1, code)

	r.ok("theme", "reset")
	require.NoError(t, json.Unmarshal([]byte(r.ok("--json", "theme")), &th))
	assert.Equal(t, model.DefaultTheme(), th)
}

func TestCLI_Files(t *testing.T) {
	r := newRunner(t, "--offline")
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello file"), 0o644))

	itemID := strings.TrimSpace(r.ok("item", "add", "--category", "cat-1", "--file", path))
	assert.Equal(t, "hello file", r.ok("file", "get", itemID))

	r.ok("item", "rm", itemID)
	assert.Contains(t, r.ok("file", "sweep"), "removed 1 unused file(s)")
}

func TestCLI_ImportExportShow(t *testing.T) {
	r := newRunner(t, "--offline")
	src := filepath.Join(t.TempDir(), "bookmarks.html")
	require.NoError(t, os.WriteFile(src, []byte(`<DL><p>
<DT><H3>Tools</H3>
<DL><p>
<DT><A HREF="https://pkg.go.dev">pkg.go.dev</A>
</DL><p>
</DL><p>`), 0o644))

	assert.Contains(t, r.ok("import", src), "imported 1 categories and 1 links")
	assert.Contains(t, r.ok("tree"), "Tools")

	out := r.ok("export")
	assert.Contains(t, out, `<DT><H3>Tools</H3>`)
	assert.Contains(t, out, `HREF="https://pkg.go.dev"`)
	assert.Contains(t, out, `HREF="https://github.com"`)

	html := r.ok("show", "item-2")
	assert.Contains(t, html, "<p>A sample note")

	_, _, code := r.run("show", "item-1")
	assert.Equal(t, 1, code, "websites have no preview")
}

func TestCLI_SyncsWithServer(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.Migrate(db))
	svc := service.NewBookmarkService(storage.NewKVRepo(db), "admin")
	srv := httptest.NewServer(apphttp.NewRouter(&apphttp.Deps{Service: svc}))
	t.Cleanup(srv.Close)

	r := newRunner(t, "--api", srv.URL+"/api")

	assert.Contains(t, r.ok("login", "admin"), "logged in (cloud)")
	id := strings.TrimSpace(r.ok("category", "add", "Synced"))

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)
	var names []string
	for _, c := range data.Categories {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Synced", "the change is pushed when the command exits")

	r.ok("sync")
	data, err = svc.GetData(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data.Items)

	path := filepath.Join(t.TempDir(), "up.txt")
	require.NoError(t, os.WriteFile(path, []byte("uploaded"), 0o644))
	itemID := strings.TrimSpace(r.ok("item", "add", "--category", id, "--file", path))

	other := newRunner(t, "--api", srv.URL+"/api")
	assert.Equal(t, "uploaded", other.ok("file", "get", itemID), "a second client fetches the file from the server")

	r.ok("theme", "set", "--default", "--mode", "light")
	data, err = svc.GetData(context.Background())
	require.NoError(t, err)
	require.NotNil(t, data.DefaultTheme)
	assert.Equal(t, model.ModeLight, data.DefaultTheme.Mode)
}
