package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bookmarkhub/internal/model"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			t := st.Theme()
			return writeOut(cmd, app, t, func(w io.Writer) {
				fmt.Fprintf(w, "mode: %s\nlight: %s %s\ndark: %s %s\n",
					t.Mode, t.LightBackground.Type, t.LightBackground.Value,
					t.DarkBackground.Type, t.DarkBackground.Value)
			})
		},
	}
	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemeResetCmd(app))
	return cmd
}

// parseBackground reads "type:value", e.g. "solid:#101010".
func parseBackground(s string) (model.BackgroundConfig, error) {
	kind, value, ok := strings.Cut(s, ":")
	if !ok {
		return model.BackgroundConfig{}, fmt.Errorf("background %q: want type:value", s)
	}
	return model.BackgroundConfig{Type: model.BackgroundType(kind), Value: value}, nil
}

func newThemeSetCmd(app *App) *cobra.Command {
	var mode, light, dark string
	var asDefault bool
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change mode or backgrounds; --default saves it for every viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			t := st.Theme()
			if mode != "" {
				t.Mode = model.ThemeMode(mode)
			}
			if light != "" {
				if t.LightBackground, err = parseBackground(light); err != nil {
					return err
				}
			}
			if dark != "" {
				if t.DarkBackground, err = parseBackground(dark); err != nil {
					return err
				}
			}
			if asDefault {
				if !st.Session().LoggedIn() {
					return fmt.Errorf("log in to change the default theme")
				}
				return st.SetDefaultTheme(cmd.Context(), t)
			}
			return st.SetTheme(cmd.Context(), t)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "system|light|dark")
	cmd.Flags().StringVar(&light, "light", "", "Light background as type:value (gradient|solid|image)")
	cmd.Flags().StringVar(&dark, "dark", "", "Dark background as type:value")
	cmd.Flags().BoolVar(&asDefault, "default", false, "Save as the default theme")
	return cmd
}

func newThemeResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop your theme and use the default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.load(cmd)
			if err != nil {
				return err
			}
			_, err = st.ResetTheme(cmd.Context())
			return err
		},
	}
}
