package cmd

import (
	"github.com/spigell/resume-analyzer/internal/analysis"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume offline: keywords and formatting only, no Gemini calls",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	addInputFlags(scoreCmd)
}

func score(cmd *cobra.Command) {
	logger, cfg := setup()

	req, err := readRequest(cmd)
	if err != nil {
		logger.Fatal("reading input", zap.Error(err))
	}

	analyzer := &analysis.Analyzer{Logger: logger, DisplayLimit: cfg.DisplayLimit}

	report, err := analyzer.Score(req)
	if err != nil {
		logger.Fatal("scoring resume", zap.Error(err))
	}

	if err := printReport(cmd, report); err != nil {
		logger.Fatal("printing report", zap.Error(err))
	}
}
