package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhubert/inkwell/internal/logger"
	"github.com/zhubert/inkwell/internal/scratch"
	"github.com/zhubert/inkwell/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scratch document and the compile API",
	Long: fmt.Sprintf(`Starts an HTTP server with two routes:

  GET  %s          the introductory scratch document
  POST %s  compile {"text": "..."} and return the plain text

Point INKWELL_SCRATCH_URL at a running server to open its scratch document.`, scratch.Path, server.CompilePath),
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "inkwell serving on %s (logs: %s)\n", serveAddr, logger.Path())
	if err := server.ListenAndServe(ctx, serveAddr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
