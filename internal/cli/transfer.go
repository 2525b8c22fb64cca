package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/bookmarkhtml"
	"bookmarkhub/internal/items"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/preview"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Save everything to the local cache, and to the server when logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			st.Sync(cmd.Context())
			target := "local cache"
			if st.Session().CanSync() {
				target = "server and local cache"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved to %s\n", target)
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <bookmarks.html>",
		Short: "Import a browser bookmark export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := bookmarkhtml.Parse(bufio.NewReader(f))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			st.Import(res.Categories, res.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories and %d links\n", len(res.Categories), len(res.Items))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write links as a browser bookmark file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				return bookmarkhtml.Write(cmd.OutOrStdout(), st.Categories(), st.Items())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := bookmarkhtml.Write(f, st.Categories(), st.Items()); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default stdout)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var page bool
	cmd := &cobra.Command{
		Use:   "show <note-id>",
		Short: "Render a note as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			it, ok := st.Item(args[0])
			if !ok {
				return items.ErrNotFound
			}
			note, ok := it.Payload.(model.Note)
			if !ok {
				return fmt.Errorf("item %s is a %s, not a note", it.ID, it.Type())
			}
			r := preview.New()
			if page {
				return r.RenderPage(cmd.OutOrStdout(), it.Title, note.Content)
			}
			html, err := r.Render(note.Content)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		},
	}
	cmd.Flags().BoolVar(&page, "page", false, "Wrap in a full HTML page")
	return cmd
}
