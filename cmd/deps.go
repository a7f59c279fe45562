package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/ai/gemini"
	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/config"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/secrets"
	"github.com/spigell/resume-analyzer/internal/store"

	"go.uber.org/zap"
)

const providerGemini = "gemini"

// apiKeyEnv lists the environment variables consulted for the Gemini key.
var apiKeyEnv = []string{"GEMINI_API_KEY", "GOOGLE_GENERATIVE_AI_API_KEY"}

func newGenerator(ctx context.Context, cfg *config.AIConfig, log *zap.Logger) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != providerGemini {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   apiKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, ai.gemini.api-key or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithCommonFields(log, providerGemini, cfg.Gemini.Model, cfg.Gemini.EmbeddingModel).
		With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.EmbeddingModel, cfg.Gemini.MaxRetries, genLogger)
}

// newAnalyzer builds the online analyzer. The advisor is only created when
// suggestions are wanted.
func newAnalyzer(ctx context.Context, cfg *config.Config, suggestions bool, log *zap.Logger) (*analysis.Analyzer, error) {
	generator, err := newGenerator(ctx, cfg.AI, log)
	if err != nil {
		return nil, fmt.Errorf("building gemini generator: %w", err)
	}

	a := &analysis.Analyzer{
		Embedder:     generator,
		Logger:       log,
		DisplayLimit: cfg.DisplayLimit,
		Suggestions:  suggestions,
	}

	if suggestions {
		advisorLogger := logger.WithCommonFields(log, providerGemini, generator.Model(), generator.EmbeddingModel())
		a.Advisor = gemini.NewAdvisor(generator, cfg.AI.Gemini.MaxLogLength, advisorLogger)
	}

	return a, nil
}

var errHistoryDisabled = errors.New("analysis history is disabled (set store.path)")

// openStore opens the history database. It returns nil without an error when
// history is disabled.
func openStore(cfg *config.StoreConfig) (*store.SQLiteStore, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, nil
	}

	return store.Open(cfg.Path)
}
