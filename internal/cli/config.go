package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), e.cfgFile)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the effective configuration (defaults, environment and flags)
to the config file.

Examples:
  taskflow config init
  taskflow --db ~/work/taskflow.db config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(e.cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", e.cfgFile)
			}
			if err := e.cfg.Save(e.cfgFile); err != nil {
				return err
			}
			e.log.Info("config written", "path", e.cfgFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", e.cfgFile)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}
