// Package cli wires the cobra command tree. Running with no subcommand
// starts the interactive board.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Devesh-1988-Wan/z10triage/internal/backup"
	"github.com/Devesh-1988-Wan/z10triage/internal/config"
	"github.com/Devesh-1988-Wan/z10triage/internal/logging"
	"github.com/Devesh-1988-Wan/z10triage/internal/store"
	"github.com/Devesh-1988-Wan/z10triage/internal/tui"
	"github.com/Devesh-1988-Wan/z10triage/internal/ui"
)

// App carries the shared dependencies of every subcommand.
type App struct {
	cfgPath string
	cfg     config.Config
	store   *store.Store
	log     *logrus.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}
	var noColor bool

	cmd := &cobra.Command{
		Use:           "z10triage",
		Short:         "Offline-first triage board (TUI + CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runBoard(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&app.cfgPath, "config", "c", "", "configuration file")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ui.SetColorForcing(false, noColor)

		cfg, err := config.Load(app.cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.EnsureDataDir(); err != nil {
			return err
		}
		app.cfg = cfg
		app.log = newLogger(cfg)
		app.store = store.New(cfg.DatabasePath())
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.store.Close()
	}

	cmd.AddCommand(
		newInitCmd(app),
		newLsCmd(app),
		newAddCmd(app),
		newMvCmd(app),
		newRmCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)
	return cmd
}

// runBoard starts the TUI with the snapshot keeper ticking alongside it.
func (app *App) runBoard(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keeper := &backup.Keeper{
		Dir:    app.cfg.SnapshotDir(),
		Keep:   app.cfg.SnapshotKeep,
		Every:  app.cfg.SnapshotEvery,
		Source: app.store.GetAll,
		Log:    app.log,
	}
	go keeper.Run(ctx)

	return tui.Run(app.store, app.log)
}

func newLogger(cfg config.Config) *logrus.Logger {
	return logging.New(cfg.LogPath())
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}
