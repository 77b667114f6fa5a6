package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/telemetry"
	"github.com/pranjal299/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `The serve command starts the web server. Each browser gets its own
navigation and carousel state, kept in memory until the session expires.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		defer func() { _ = logger.Sync() }()

		p, err := content.Load()
		if err != nil {
			return err
		}

		tp, err := telemetry.Setup(ctx, appConfig.OTLPEndpoint, appConfig.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("tracer shutdown", zap.Error(err))
			}
		}()
		if tp.Enabled() {
			logger.Info("tracing enabled", zap.String("endpoint", appConfig.OTLPEndpoint))
		}

		srv, err := web.New(appConfig, p, logger, tp.Tracer())
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().String("mode", "release", "gin mode (debug, release, test)")
	serveCmd.Flags().String("public-dir", "./public", "directory served under /files")
	rootCmd.AddCommand(serveCmd)
}
