package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/inkwell/internal/document"
	"github.com/zhubert/inkwell/internal/errors"
)

var compileJSON bool

var compileCmd = &cobra.Command{
	Use:   "compile [FILE]",
	Short: "Compile a document and print its plain text",
	Long: `Compiles FILE (or standard input) and prints the plain-text rendering.
Warnings are printed to standard error. With --json the full block
structure is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "Print the compiled blocks as JSON")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	input := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("error opening %s: %w", args[0], err)
		}
		defer f.Close()
		input = f
	}
	return compileTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), input, compileJSON)
}

// compileTo compiles everything read from in and writes the result to out.
func compileTo(out, errOut io.Writer, in io.Reader, asJSON bool) error {
	data, err := io.ReadAll(io.LimitReader(in, document.MaxSourceSize+1))
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if len(data) > document.MaxSourceSize {
		return errors.SourceTooLarge(len(data), document.MaxSourceSize)
	}

	compiled := document.Compile(string(data))
	for _, w := range compiled.Warnings {
		fmt.Fprintf(errOut, "warning: %s\n", w)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(compiled)
	}
	_, err = io.WriteString(out, compiled.PlainText())
	return err
}
