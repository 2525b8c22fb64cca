// Package cli implements the bookmarks command-line client.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/cloud"
	"bookmarkhub/internal/config"
	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/remote"
	"bookmarkhub/internal/session"
)

// App carries flag values and the store opened for the running command.
type App struct {
	APIURL    string
	CachePath string
	Offline   bool
	JSON      bool
	Verbose   bool

	store *cloud.Store
}

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bookmarks",
		Short:         "Bookmarks, notes and files in a category tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Show the category tree
  bookmarks tree

  # Save a link under a category
  bookmarks item add --category cat-1 --title "Go" --url https://go.dev

  # Log in to sync with the server
  bookmarks login admin
`),
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", "", "API base URL (default from BOOKMARKS_API_URL)")
	cmd.PersistentFlags().StringVar(&app.CachePath, "cache", "", "Local cache database (default from BOOKMARKS_CACHE_PATH)")
	cmd.PersistentFlags().BoolVar(&app.Offline, "offline", false, "Never contact the API")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Print JSON")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newPasswdCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newTreeCmd(app))
	cmd.AddCommand(newCategoryCmd(app))
	cmd.AddCommand(newItemCmd(app))
	cmd.AddCommand(newFileCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newSyncCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

// Execute runs the client with args and returns the process exit code.
// Pending changes are persisted before it returns.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := &App{}
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if cerr := app.Close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err.Error())
		return 1
	}
	return 0
}

// load opens and loads the store on first use.
func (app *App) load(cmd *cobra.Command) (*cloud.Store, error) {
	if app.store != nil {
		return app.store, nil
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if app.APIURL != "" {
		cfg.APIURL = strings.TrimRight(app.APIURL, "/")
	}
	if app.CachePath != "" {
		cfg.CachePath = app.CachePath
	}

	level := cfg.LogLevel
	if !app.Verbose && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}
	logger := slog.New(handler)
	ctx := contextutil.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	sess := session.New()
	var api remote.API
	if !app.Offline {
		api = remote.NewClient(cfg.APIURL, sess, cfg.PingTimeout)
	}
	st := cloud.New(ctx, api, localstore.New(cfg.CachePath), sess, cloud.Options{SaveDebounce: cfg.SaveDebounce})
	if err := st.Load(ctx); err != nil {
		return nil, err
	}
	app.store = st
	return st, nil
}

// Close flushes and closes the store if a command opened one.
func (app *App) Close(ctx context.Context) error {
	if app.store == nil {
		return nil
	}
	err := app.store.Close(ctx)
	app.store = nil
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeOut prints v as JSON with --json, or the text produced by text.
func writeOut(cmd *cobra.Command, app *App, v any, text func(w io.Writer)) error {
	if app.JSON {
		return writeJSON(cmd, v)
	}
	text(cmd.OutOrStdout())
	return nil
}
