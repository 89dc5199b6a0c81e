// Package cli is the taskflow command line. With no subcommand it launches
// the terminal UI.
package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sadopc/taskflow/internal/config"
	"github.com/sadopc/taskflow/internal/core"
	"github.com/sadopc/taskflow/internal/logger"
	"github.com/sadopc/taskflow/internal/tui"
)

// env is the state shared by every command of one invocation.
type env struct {
	configPath string
	dbPath     string
	logLevel   string
	logFile    string

	cfgFile   string // resolved config path
	cfg       *config.Config
	log       *log.Logger
	logCloser io.Closer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "taskflow",
		Short: "TaskFlow - projects and tasks in the terminal",
		Long: `TaskFlow tracks projects, their tasks and comments.

Run 'taskflow' without arguments to launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := core.Open(e.cfg, e.log)
			if err != nil {
				return err
			}
			defer app.Close()

			e.log.Info("launching TUI")
			p := tea.NewProgram(tui.NewApp(app), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				e.log.Error("TUI error", "err", err)
				return fmt.Errorf("run TUI: %w", err)
			}
			e.log.Info("TUI exited normally")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				e.log.Debug("exiting", "command", cmd.Name())
			}
			if e.logCloser != nil {
				e.logCloser.Close()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&e.configPath, "config", "", "Path to config file")
	f.StringVar(&e.dbPath, "db", "", "Path to the preferences database")
	f.StringVar(&e.logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	f.StringVar(&e.logFile, "log-file", "", "Path to log file (empty disables logging)")

	root.AddCommand(newConfigCmd(e))
	root.AddCommand(newPrefsCmd(e))
	root.AddCommand(newProjectsCmd(e))
	root.AddCommand(newExportCmd(e))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config, applies flag overrides and opens the logger.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	path := e.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	e.cfgFile = path

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = e.dbPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = e.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = e.logFile
	}
	e.cfg = cfg

	lg, closer, err := logger.New(logger.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	e.log, e.logCloser = lg, closer
	e.log.Info("taskflow started", "command", cmd.Name(), "db", cfg.DBPath)
	return nil
}

// openCore builds the application core for a one-shot subcommand.
func (e *env) openCore() (*core.App, error) {
	return core.Open(e.cfg, e.log)
}
