// ABOUTME: Root command that runs the interactive comment board.
// ABOUTME: Loads config, opens the configured store, and starts the menu loop.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/harper/commentbox/internal/app"
	"github.com/harper/commentbox/internal/board"
	"github.com/harper/commentbox/internal/config"
	"github.com/harper/commentbox/internal/logging"
	"github.com/harper/commentbox/internal/ui"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "commentbox",
	Short: "Terminal comment board",
	Long: `A menu-driven comment board backed by a remote key-value store.

Create, view, update and delete comments. Update and delete pick a comment
by its number in the listing shown just before the prompt.

Connection settings are read from ` + config.ConfigPath() + `,
a .env file, or COMMENTBOX_* environment variables.`,
	Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		logger, closeLog, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()

		s, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		b := board.New(s, logger)
		defer func() { _ = b.Close() }()

		var console *ui.Console
		if ui.IsTerminal(os.Stdin, os.Stdout) {
			console = ui.NewTerminalConsole(os.Stdin, os.Stdout, app.MenuItems)
		} else {
			console = ui.NewLineConsole(os.Stdin, os.Stdout, app.MenuItems)
		}

		return app.New(b, console, logger).Run(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.ConfigPath()+")")
}
