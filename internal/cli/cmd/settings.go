package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/duopane/internal/cli"
	"github.com/bnema/duopane/internal/cli/model"
	"github.com/bnema/duopane/internal/cli/styles"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/infrastructure/settings"
	"github.com/bnema/duopane/internal/logging"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or edit the side URLs, split ratio and divider color",
	Long: `Inspect and change the persisted settings record.

A running window picks up changes written here within a moment.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE:  runSettingsPath,
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings file",
	RunE:  runSettingsSchema,
}

var settingsGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print one settings field",
	Args:      cobra.ExactArgs(1),
	ValidArgs: settings.Keys(),
	RunE:      runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one settings field",
	Long: `Change one settings field and save the record.

Keys: side_a_url, side_b_url, split_ratio, divider_color, swapped.
The split ratio is clamped to 10..90.`,
	Example: `  duopane settings set side_a_url https://mail.example.com
  duopane settings set split_ratio 60
  duopane settings set swapped true`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings in an interactive form",
	RunE:  runSettingsEdit,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsPathCmd, settingsSchemaCmd,
		settingsGetCmd, settingsSetCmd, settingsEditCmd)
}

// loadSettings reads the record, treating a malformed file as defaults the
// way the window does.
func loadSettings(app *cli.App) (entity.Settings, error) {
	s, err := app.Settings.Load(app.Ctx())
	if errors.Is(err, settings.ErrMalformed) {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("settings file unreadable, showing defaults")
		return s, nil
	}
	return s, err
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	s, err := loadSettings(app)
	if err != nil {
		return err
	}

	renderer := styles.NewSettingsCLIRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSettings(app.Settings.Path(), s))
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Settings.Path())
	return nil
}

func runSettingsSchema(cmd *cobra.Command, _ []string) error {
	schema, err := settings.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	s, err := loadSettings(app)
	if err != nil {
		return err
	}

	value, err := settings.Field(s, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	s, err := loadSettings(app)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	updated, err := settings.SetField(s, key, value)
	if err != nil {
		return err
	}
	if err := app.Settings.Save(app.Ctx(), updated.Normalized()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	shown, _ := settings.Field(updated, key)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewSettingsCLIRenderer(app.Theme).RenderSet(key, shown))
	return nil
}

func runSettingsEdit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	s, err := loadSettings(app)
	if err != nil {
		return err
	}

	form := model.NewSettingsFormModel(app.Ctx(), app.Theme, model.SettingsFormConfig{
		Initial: s,
		Save:    app.Settings.Save,
	})

	final, err := tea.NewProgram(form).Run()
	if err != nil {
		return fmt.Errorf("run settings form: %w", err)
	}

	done, ok := final.(model.SettingsFormModel)
	if !ok || !done.Saved() {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewSettingsCLIRenderer(app.Theme).RenderSaved(app.Settings.Path()))
	return nil
}
