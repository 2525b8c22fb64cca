package cli

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/cloud"
	"bookmarkhub/internal/items"
	"bookmarkhub/internal/model"
)

type filterFlags struct {
	category string
	kind     string
	query    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "Only this category and its subcategories")
	cmd.Flags().StringVar(&f.kind, "type", "", "Only items of this type (website|note|file)")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Case-insensitive text search")
}

func (f *filterFlags) filter(st *cloud.Store) (items.Filter, error) {
	out := items.Filter{Type: model.ItemType(f.kind), Query: f.query}
	if f.kind != "" && !out.Type.Valid() {
		return items.Filter{}, fmt.Errorf("unknown item type %q", f.kind)
	}
	if f.category != "" {
		if _, ok := st.Category(f.category); !ok {
			return items.Filter{}, fmt.Errorf("unknown category %q", f.category)
		}
		out.Categories = st.DescendantIDs(f.category)
	}
	return out, nil
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "List, add, edit, delete and reorder items",
	}
	cmd.AddCommand(newItemLsCmd(app))
	cmd.AddCommand(newItemAddCmd(app))
	cmd.AddCommand(newItemEditCmd(app))
	cmd.AddCommand(newItemRmCmd(app))
	cmd.AddCommand(newItemReorderCmd(app))
	return cmd
}

func describe(it model.BookmarkItem) string {
	switch p := it.Payload.(type) {
	case model.Website:
		return p.URL
	case model.Note:
		return fmt.Sprintf("%d chars", len(p.Content))
	case model.File:
		return p.Name
	}
	return ""
}

func newItemLsCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items in display order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			f, err := ff.filter(st)
			if err != nil {
				return err
			}
			view := st.View(f)
			if view == nil {
				view = []model.BookmarkItem{}
			}
			return writeOut(cmd, app, view, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, it := range view {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.ID, it.Type(), it.Title, describe(it))
				}
				_ = tw.Flush()
			})
		},
	}
	ff.register(cmd)
	return cmd
}

type payloadFlags struct {
	url     string
	favicon string
	content string
	file    string
}

func (pf *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.url, "url", "", "Website address")
	cmd.Flags().StringVar(&pf.favicon, "favicon", "", "Website icon URL")
	cmd.Flags().StringVar(&pf.content, "content", "", "Note text")
	cmd.Flags().StringVar(&pf.file, "file", "", "Path of a file to upload")
}

// payload builds the item payload from whichever flag group is set. It
// returns nil when none is.
func (pf *payloadFlags) payload(cmd *cobra.Command, st *cloud.Store) (model.Payload, error) {
	set := 0
	for _, v := range []string{pf.url, pf.content, pf.file} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("use only one of --url, --content or --file")
	}
	switch {
	case pf.url != "":
		return model.Website{URL: pf.url, Favicon: pf.favicon}, nil
	case pf.content != "":
		return model.Note{Content: pf.content}, nil
	case pf.file != "":
		data, err := os.ReadFile(pf.file)
		if err != nil {
			return nil, err
		}
		name := filepath.Base(pf.file)
		mimeType := mime.TypeByExtension(filepath.Ext(name))
		if mimeType == "" {
			mimeType = http.DetectContentType(data)
		}
		id, err := st.SaveFile(cmd.Context(), name, mimeType, data)
		if err != nil {
			return nil, err
		}
		return model.File{Name: name, MIMEType: mimeType, FileID: id}, nil
	}
	return nil, nil
}

func newItemAddCmd(app *App) *cobra.Command {
	var category, title string
	var pf payloadFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a website (--url), note (--content) or file (--file)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			p, err := pf.payload(cmd, st)
			if err != nil {
				return err
			}
			if p == nil {
				return errors.New("one of --url, --content or --file is required")
			}
			if title == "" {
				if f, ok := p.(model.File); ok {
					title = f.Name
				}
			}
			it, err := st.AddItem(items.Draft{Title: title, CategoryID: category, Payload: p})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, it, func(w io.Writer) {
				fmt.Fprintln(w, it.ID)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category id")
	cmd.Flags().StringVar(&title, "title", "", "Title (files default to the file name)")
	pf.register(cmd)
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newItemEditCmd(app *App) *cobra.Command {
	var category, title string
	var pf payloadFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an item's title, category or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			cur, ok := st.Item(args[0])
			if !ok {
				return items.ErrNotFound
			}
			p, err := pf.payload(cmd, st)
			if err != nil {
				return err
			}
			if p != nil && p.Type() != cur.Type() {
				return fmt.Errorf("item %s is a %s", cur.ID, cur.Type())
			}
			if title == "" {
				title = cur.Title
			}
			it, err := st.UpdateItem(cur.ID, items.Draft{Title: title, CategoryID: category, Payload: p})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, it, func(w io.Writer) {
				fmt.Fprintf(w, "updated %s\n", it.ID)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Move to this category")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	pf.register(cmd)
	return cmd
}

func newItemRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			return st.DeleteItem(args[0])
		},
	}
}

func newItemReorderCmd(app *App) *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "reorder <id> <onto-id>",
		Short: "Move an item to another item's place in the filtered list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			f, err := ff.filter(st)
			if err != nil {
				return err
			}
			if !st.ReorderItems(f, args[0], args[1]) {
				return fmt.Errorf("cannot move %s onto %s in this view", args[0], args[1])
			}
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}
