package cmd

import (
	"context"

	"github.com/spigell/resume-analyzer/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description with Gemini embeddings and suggestions",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addInputFlags(analyzeCmd)
	analyzeCmd.Flags().Bool("no-suggestions", false, "skip the suggestions and the revised summary")
	analyzeCmd.Flags().Bool("save", false, "save the report to the history database")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()
	logger, cfg := setup()

	req, err := readRequest(cmd)
	if err != nil {
		logger.Fatal("reading input", zap.Error(err))
	}

	noSuggestions, _ := cmd.Flags().GetBool("no-suggestions")

	analyzer, err := newAnalyzer(ctx, cfg, cfg.AI.Suggestions && !noSuggestions, logger)
	if err != nil {
		logger.Fatal("preparing analyzer", zap.Error(err))
	}

	report, err := analyzer.Analyze(ctx, req)
	if err != nil {
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		db, err := openStore(cfg.Store)
		if err != nil {
			logger.Fatal("opening history", zap.Error(err))
		}
		if db == nil {
			logger.Fatal("saving report", zap.Error(errHistoryDisabled))
		}
		defer db.Close()

		rec := &store.Record{FileName: req.FileName, JobDescription: req.JobDescription, Report: *report}
		if err := db.Save(ctx, rec); err != nil {
			logger.Fatal("saving report", zap.Error(err))
		}

		logger.Info("report saved", zap.String("id", rec.ID), zap.String("path", cfg.Store.Path))
	}

	if err := printReport(cmd, report); err != nil {
		logger.Fatal("printing report", zap.Error(err))
	}
}
