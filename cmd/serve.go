package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spigell/resume-analyzer/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default :8080)")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, cfg := setup()
	logger.Info("starting the resume-analyzer", zap.String("version", version))

	analyzer, err := newAnalyzer(ctx, cfg, cfg.AI.Suggestions, logger)
	if err != nil {
		logger.Fatal("preparing analyzer", zap.Error(err))
	}

	db, err := openStore(cfg.Store)
	if err != nil {
		logger.Fatal("opening history", zap.Error(err))
	}

	// A nil *SQLiteStore must not end up as a non-nil interface.
	var history server.Store
	if db != nil {
		defer db.Close()
		history = db
		logger.Info("analysis history enabled", zap.String("path", cfg.Store.Path))
	}

	srv := server.New(server.Options{
		Listen:         cfg.Server.Listen,
		RateLimit:      cfg.Server.RateLimit,
		Burst:          cfg.Server.Burst,
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
	}, analyzer, history, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("running server", zap.Error(err))
	}
}
