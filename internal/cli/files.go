package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/cloud"
	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/model"
)

func newFileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Download and clean up stored files",
	}
	cmd.AddCommand(newFileGetCmd(app))
	cmd.AddCommand(newFileSweepCmd(app))
	return cmd
}

func newFileGetCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "get <item-id|file-id>",
		Short: "Write a file item's content to --out or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			var f localstore.File
			if it, ok := st.Item(args[0]); ok {
				if it.Type() != model.TypeFile {
					return fmt.Errorf("item %s is a %s", it.ID, it.Type())
				}
				f, err = st.ItemFile(cmd.Context(), it)
			} else {
				f, err = st.GetFile(cmd.Context(), args[0])
			}
			if errors.Is(err, cloud.ErrFileNotFound) {
				return fmt.Errorf("%s: preview unavailable, file not found", args[0])
			}
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(f.Data)
				return err
			}
			if err := os.WriteFile(out, f.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s, %d bytes)\n", out, f.Type, len(f.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path")
	return cmd
}

func newFileSweepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete cached files no item refers to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			n, err := st.CleanupUnusedFiles(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d unused file(s)\n", n)
			return nil
		},
	}
}
