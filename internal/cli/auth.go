package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/cloud"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <password>",
		Short: "Log in to edit and sync",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			if err := st.Login(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, cloud.ErrUnauthorized) {
					return errors.New("wrong password")
				}
				return err
			}
			mode := "local"
			if st.Session().Cloud() {
				mode = "cloud"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in (%s)\n", mode)
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			if err := st.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newPasswdCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd <old> <new>",
		Short: "Change the shared password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			if err := st.ChangePassword(cmd.Context(), args[0], args[1]); err != nil {
				if errors.Is(err, cloud.ErrUnauthorized) {
					return errors.New("log in first; the old password must match the current login")
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password changed")
			return nil
		},
	}
}

type statusView struct {
	Cloud      bool `json:"cloud"`
	LoggedIn   bool `json:"loggedIn"`
	Categories int  `json:"categories"`
	Total      int  `json:"total"`
	Websites   int  `json:"websites"`
	Notes      int  `json:"notes"`
	Files      int  `json:"files"`
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show mode, login and item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			stats := st.Stats()
			v := statusView{
				Cloud:      st.Session().Cloud(),
				LoggedIn:   st.Session().LoggedIn(),
				Categories: len(st.Categories()),
				Total:      stats.Total,
				Websites:   stats.Websites,
				Notes:      stats.Notes,
				Files:      stats.Files,
			}
			return writeOut(cmd, app, v, func(w io.Writer) {
				mode := "local"
				if v.Cloud {
					mode = "cloud"
				}
				fmt.Fprintf(w, "mode: %s\nlogged in: %t\ncategories: %d\nitems: %d (%d websites, %d notes, %d files)\n",
					mode, v.LoggedIn, v.Categories, v.Total, v.Websites, v.Notes, v.Files)
			})
		},
	}
}
