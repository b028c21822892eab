// Package cmd provides Cobra CLI commands for duopane.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/duopane/internal/cli"
	"github.com/bnema/duopane/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "duopane",
		Short: "Two web apps side by side, each with its own session",
		Long: `duopane - two web apps in one window.

Each side keeps its own cookies, storage and logins, so you can stay signed in
to two accounts of the same service at once. Drag the divider to resize, and
swap the sides without losing either session.

Use 'duopane open' to launch the window, or explore the subcommands to edit
settings and manage the stored sessions from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			if app != nil {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// openCmd is a placeholder for help - actual execution is in main.go
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Launch the dual-pane window",
	Long: `Launch the GTK4 window hosting both sides.

On first launch both sides are empty; use the buttons on each side, Ctrl+, or
'duopane settings set' to choose their URLs.`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
