package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/inkwell/internal/config"
	"github.com/zhubert/inkwell/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and saved settings",
	Long: `Removes the debug log and the saved configuration (theme and divider
position). It will prompt for confirmation before proceeding unless the
--yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("error locating config: %w", err)
	}
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), path)
}

// runCleanWithReader allows injecting a reader and config path for testing
func runCleanWithReader(input io.Reader, out io.Writer, configPath string) error {
	_, statErr := os.Stat(configPath)
	hasConfig := statErr == nil
	_, statErr = os.Stat(logger.DefaultLogPath)
	hasLog := statErr == nil

	if !hasConfig && !hasLog {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will clean:")
	if hasConfig {
		fmt.Fprintf(out, "  - saved settings in %s\n", configPath)
	}
	if hasLog {
		fmt.Fprintf(out, "  - debug log %s\n", logger.DefaultLogPath)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if hasConfig {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing config: %w", err)
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if hasConfig {
		fmt.Fprintln(out, "  - saved settings removed")
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
