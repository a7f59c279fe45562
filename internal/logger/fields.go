package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the AI provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"
	// FieldEmbeddingModel is the structured log field key for the embedding model identifier.
	FieldEmbeddingModel = "ai_embedding_model"

	FieldATAScore        = "ata_score"
	FieldKeywordScore    = "keyword_score"
	FieldSemanticScore   = "semantic_score"
	FieldFormattingScore = "formatting_score"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger. A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the fields describing the AI provider and its models.
func CommonFields(provider, model, embeddingModel string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
		StringField{Key: FieldEmbeddingModel, Value: embeddingModel},
	)
}

// WithCommonFields attaches the common AI fields to the provided logger.
func WithCommonFields(logger *zap.Logger, provider, model, embeddingModel string) *zap.Logger {
	return WithFields(logger, CommonFields(provider, model, embeddingModel)...)
}

// ScoreFields describes the four display scores of a resume analysis.
func ScoreFields(ata, keyword, semantic, formatting int) []zap.Field {
	return []zap.Field{
		zap.Int(FieldATAScore, ata),
		zap.Int(FieldKeywordScore, keyword),
		zap.Int(FieldSemanticScore, semantic),
		zap.Int(FieldFormattingScore, formatting),
	}
}
