package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/sadopc/taskflow/internal/prefs"
	"github.com/sadopc/taskflow/internal/store"
)

func newPrefsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or change the persisted preferences",
		Long: `Read or change the persisted preferences.

Keys:
  app_locale  tr | en
  themeMode   system | light | dark`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a preference value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(prefs.Keys(), args[0]) {
				return fmt.Errorf("unknown preference %q", args[0])
			}
			app, err := e.openCore()
			if err != nil {
				return err
			}
			defer app.Close()
			fmt.Fprintln(cmd.OutOrStdout(), app.Prefs.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validatePref(key, value); err != nil {
				return err
			}
			app, err := e.openCore()
			if err != nil {
				return err
			}
			defer app.Close()
			app.Prefs.Set(key, value)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, app.Prefs.Get(key))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every preference with its source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.New(e.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			stored, err := st.ListSettings()
			if err != nil {
				return err
			}
			p := prefs.New(st, e.log)
			out := cmd.OutOrStdout()
			for _, k := range prefs.Keys() {
				source := "default"
				if slices.ContainsFunc(stored, func(s store.Setting) bool { return s.Key == k }) {
					source = "stored"
				}
				fmt.Fprintf(out, "%-12s %-8s (%s)\n", k, p.Get(k), source)
			}
			return nil
		},
	})

	return cmd
}

// validatePref rejects what prefs.Store would silently ignore.
func validatePref(key, value string) error {
	switch key {
	case prefs.KeyLocale:
		if _, ok := prefs.ParseLocale(value); !ok {
			return fmt.Errorf("unsupported locale %q (want tr or en)", value)
		}
	case prefs.KeyThemeMode:
		if _, ok := prefs.ParseThemeMode(value); !ok {
			return fmt.Errorf("unsupported theme mode %q (want system, light or dark)", value)
		}
	default:
		return fmt.Errorf("unknown preference %q", key)
	}
	return nil
}
