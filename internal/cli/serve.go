package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"knighty/internal/server"
)

var (
	serveAddr     string
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cheat sheets and the query API over HTTP",
	Long: `Starts an HTTP server that serves the cheat sheet documents under /htmls/
and a JSON API for searching the catalog. PORT overrides the listen port.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(nil)
	if err != nil {
		return err
	}

	addr := a.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(server.Config{
		Addr:     addr,
		DocsDir:  a.cfg.DocsDir,
		AllowAll: a.cfg.Server.AllowAllOrigins || serveAllowAll,
	}, a.store, a.bundle)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "knighty server starting on %s\n", addr)
	fmt.Fprintf(cmd.ErrOrStderr(), "  Docs: %s\n", a.cfg.DocsDir)
	fmt.Fprintf(cmd.ErrOrStderr(), "  Cheat sheets: %d\n", a.store.Count())

	return srv.Run(ctx)
}
