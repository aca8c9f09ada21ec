package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/inkwell/internal/app"
	"github.com/zhubert/inkwell/internal/config"
	"github.com/zhubert/inkwell/internal/loader"
	"github.com/zhubert/inkwell/internal/logger"
	"github.com/zhubert/inkwell/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	noHeader              bool
	newDocument           bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "inkwell [SOURCE]",
	Short: "Terminal editor with a live document preview",
	Long: `Inkwell edits a lightweight-markup document in the terminal, with the
compiled preview beside it. Drag the divider (or use ctrl+left/right) to
resize the panes.

SOURCE may be a file path or an http(s) URL. Without one, inkwell opens an
introductory scratch document.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "Hide the title row")
	rootCmd.Flags().BoolVarP(&newDocument, "new", "n", false, "Start with an empty document")

	config.ThemeValidator = ui.IsThemeName
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("inkwell %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("inkwell %s\n", version)
}

// sourceFetcher picks where the initial document comes from.
func sourceFetcher(source string, empty bool) loader.Fetcher {
	if empty {
		return loader.StaticFetcher("")
	}
	return loader.FetcherFor(source)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if newDocument && len(args) > 0 {
		return fmt.Errorf("--new cannot be combined with a source")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	source := cfg.GetScratchURL()
	if len(args) > 0 {
		source = args[0]
	}

	opts := []app.Option{app.WithSource(source)}
	if noHeader {
		opts = append(opts, app.WithHeader(false))
	}

	m := app.New(cfg, version, loader.New(sourceFetcher(source, newDocument)), opts...)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
