package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/dnd"
	"bookmarkhub/internal/model"
)

type treeRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
	Level    int     `json:"level"`
	Order    int     `json:"order"`
}

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "tree",
		Aliases: []string{"ls"},
		Short:   "Print the category tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			nodes := st.Flatten(nil)
			rows := make([]treeRow, 0, len(nodes))
			for _, n := range nodes {
				rows = append(rows, treeRow{
					ID:       n.Category.ID,
					Name:     n.Category.Name,
					ParentID: n.Category.ParentID,
					Level:    n.Level,
					Order:    n.Category.Order,
				})
			}
			return writeOut(cmd, app, rows, func(w io.Writer) {
				for _, r := range rows {
					fmt.Fprintf(w, "%s%s  [%s]\n", strings.Repeat("  ", r.Level), r.Name, r.ID)
				}
			})
		},
	}
}

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Create, rename, delete and move categories",
	}
	cmd.AddCommand(newCategoryAddCmd(app))
	cmd.AddCommand(newCategoryRenameCmd(app))
	cmd.AddCommand(newCategoryRmCmd(app))
	cmd.AddCommand(newCategoryMvCmd(app))
	cmd.AddCommand(newCategoryDragCmd(app))
	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category at the end of its parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			c, err := st.AddCategory(args[0], model.Ref(parent))
			if err != nil {
				return err
			}
			return writeOut(cmd, app, c, func(w io.Writer) {
				fmt.Fprintln(w, c.ID)
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "Parent category id (default: top level)")
	return cmd
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			return st.RenameCategory(args[0], args[1])
		},
	}
}

func newCategoryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category with its subtree and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			n, err := st.DeleteCategory(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s and %d item(s)\n", args[0], n)
			return nil
		},
	}
}

func newCategoryMvCmd(app *App) *cobra.Command {
	var parent string
	var order int
	cmd := &cobra.Command{
		Use:   "mv <id>",
		Short: "Move a category under --parent at position --order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			return st.MoveCategory(args[0], model.Ref(parent), order)
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "New parent id (default: top level)")
	cmd.Flags().IntVar(&order, "order", 0, "Position among the new siblings")
	return cmd
}

// newCategoryDragCmd commits the same placements a pointer drag produces.
func newCategoryDragCmd(app *App) *cobra.Command {
	var before, after, inside string
	var root bool
	cmd := &cobra.Command{
		Use:   "drag <id>",
		Short: "Drop a category before, after or inside another, or at the top level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p dnd.Placement
			set := 0
			if before != "" {
				p, set = dnd.Placement{Type: dnd.Before, TargetID: before}, set+1
			}
			if after != "" {
				p, set = dnd.Placement{Type: dnd.After, TargetID: after}, set+1
			}
			if inside != "" {
				p, set = dnd.Placement{Type: dnd.Inside, TargetID: inside}, set+1
			}
			if root {
				p, set = dnd.Placement{Type: dnd.Root, TargetID: dnd.RootZoneID}, set+1
			}
			if set != 1 {
				return errors.New("provide exactly one of --before, --after, --inside or --root")
			}

			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			mv, ok, err := st.DragCategory(args[0], p)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cannot drop %s there", args[0])
			}
			return writeOut(cmd, app, mv, func(w io.Writer) {
				parent := model.Deref(mv.ParentID)
				if parent == "" {
					parent = "top level"
				}
				fmt.Fprintf(w, "moved %s under %s at %d\n", mv.CategoryID, parent, mv.Order)
			})
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "Drop before this category")
	cmd.Flags().StringVar(&after, "after", "", "Drop after this category")
	cmd.Flags().StringVar(&inside, "inside", "", "Drop as the last child of this category")
	cmd.Flags().BoolVar(&root, "root", false, "Drop at the end of the top level")
	return cmd
}
