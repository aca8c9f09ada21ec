package cmd

import (
	"fmt"
	"io"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/inkwell/internal/config"
	"github.com/zhubert/inkwell/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme [NAME]",
	Short: "List color themes or choose one",
	Long: `Without arguments, lists the built-in themes and marks the active one.
With NAME, saves it as the theme for future sessions. With --pick, choose
one interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

var pickTheme bool

func init() {
	themeCmd.Flags().BoolVarP(&pickTheme, "pick", "p", false, "Choose a theme interactively")
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if pickTheme && len(args) == 0 {
		name, err := promptTheme(cfg.GetTheme())
		if err != nil {
			return err
		}
		return saveTheme(cmd.OutOrStdout(), cfg, name)
	}
	if len(args) == 0 {
		listThemes(cmd.OutOrStdout(), cfg.GetTheme())
		return nil
	}
	return saveTheme(cmd.OutOrStdout(), cfg, args[0])
}

func listThemes(out io.Writer, active string) {
	if active == "" {
		active = string(ui.DefaultTheme)
	}
	for _, name := range ui.ThemeNames() {
		marker := " "
		if string(name) == active {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s %s\n", marker, name, ui.GetTheme(name).Name)
	}
}

func saveTheme(out io.Writer, cfg *config.Config, name string) error {
	if !ui.IsThemeName(name) {
		return fmt.Errorf("unknown theme %q (run 'inkwell theme' to list themes)", name)
	}
	cfg.SetTheme(name)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	fmt.Fprintf(out, "Theme set to %s.\n", name)
	return nil
}

// promptTheme asks the user to pick a theme, starting from current.
func promptTheme(current string) (string, error) {
	choice := current
	if !ui.IsThemeName(choice) {
		choice = string(ui.DefaultTheme)
	}
	ui.SetThemeByName(choice)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Colors for the editor, preview and code listings").
				Options(ui.ThemeOptions()...).
				Value(&choice),
		),
	).WithTheme(ui.FormTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("theme selection cancelled: %w", err)
	}
	return choice, nil
}
