package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/duopane/internal/cli/styles"
	"github.com/bnema/duopane/internal/domain/entity"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage the per-side session storage",
	Long: `Each side stores cookies, local storage and credentials in its own
partition. These commands list the partitions and wipe their data.`,
	RunE: runSessionsList,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered partitions",
	RunE:  runSessionsList,
}

var sessionsClearCmd = &cobra.Command{
	Use:   "clear <a|b>",
	Short: "Wipe the stored session data of one side",
	Long: `Remove the cookies, storage and cache of one side. The side keeps its
partition and starts logged out the next time the window opens.

Close the window first; a running window keeps its session in memory.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"a", "b"},
	RunE:      runSessionsClear,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsClearCmd)
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	registry, err := app.Registry()
	if err != nil {
		return fmt.Errorf("open partition registry: %w", err)
	}

	partitions, err := registry.List(app.Ctx())
	if err != nil {
		return err
	}

	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	if len(partitions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEmptyList())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderList(partitions))
	return nil
}

func runSessionsClear(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	side, err := entity.ParseSide(args[0])
	if err != nil {
		return err
	}

	registry, err := app.Registry()
	if err != nil {
		return fmt.Errorf("open partition registry: %w", err)
	}
	if err := registry.Clear(app.Ctx(), side); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewSessionsCLIRenderer(app.Theme).RenderCleared(side))
	return nil
}
