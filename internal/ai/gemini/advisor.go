package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/util"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed suggestions.md
var suggestionsTemplate string

//go:embed summary.md
var summaryTemplate string

const (
	defaultMaxLogLength = 200

	suggestionsResumeRunes = 2000
	suggestionsJobRunes    = 1000
	summaryResumeRunes     = 500
	summaryJobRunes        = 500
)

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// Advisor asks Gemini for resume suggestions and a rewritten summary.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Advisor = (*Advisor)(nil)

func NewAdvisor(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Suggestions returns improvement ideas for the resume. Unparseable model
// output yields ai.FallbackSuggestions; generation errors are returned.
func (a *Advisor) Suggestions(ctx context.Context, input ai.SuggestionInput) ([]string, error) {
	prompt := fillTemplate(suggestionsTemplate,
		"{{RESUME}}", util.Prefix(input.Resume, suggestionsResumeRunes),
		"{{JOB_DESCRIPTION}}", util.Prefix(input.JobDescription, suggestionsJobRunes),
		"{{MISSING_KEYWORDS}}", strings.Join(input.Missing, ", "),
	)

	raw, err := a.generate(ctx, "suggestions", prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		a.logger.Warn("falling back to default suggestions", zap.Error(err))
		return ai.FallbackSuggestions(), nil
	}

	return suggestions, nil
}

// RevisedSummary rewrites the opening of the resume towards the job description.
func (a *Advisor) RevisedSummary(ctx context.Context, resume, jobDescription string) (string, error) {
	prompt := fillTemplate(summaryTemplate,
		"{{RESUME}}", util.Prefix(resume, summaryResumeRunes),
		"{{JOB_DESCRIPTION}}", util.Prefix(jobDescription, summaryJobRunes),
	)

	raw, err := a.generate(ctx, "revised summary", prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(raw), nil
}

func (a *Advisor) generate(ctx context.Context, purpose, prompt string) (string, error) {
	a.logger.Debug("gemini generate content request",
		zap.String("purpose", purpose),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", purpose, err)
	}

	a.logger.Debug("gemini generate content response",
		zap.String("purpose", purpose),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, a.maxLogLen)),
	)

	return raw, nil
}

// fillTemplate substitutes placeholder/value pairs in a single pass, so text
// inserted for one placeholder is never expanded again.
func fillTemplate(template string, pairs ...string) string {
	return strings.TrimSpace(strings.NewReplacer(pairs...).Replace(template))
}

// suggestionItem is the object form some responses use instead of plain strings.
type suggestionItem struct {
	Text       string `mapstructure:"text"`
	Suggestion string `mapstructure:"suggestion"`
}

// parseSuggestions decodes the first JSON array in raw. Output without an
// array is split into non-empty lines.
func parseSuggestions(raw string) ([]string, error) {
	block := jsonArrayRe.FindString(raw)
	if block == "" {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			return nil, errors.New("empty suggestions response")
		}
		return lines, nil
	}

	var items []any
	if err := json.Unmarshal([]byte(block), &items); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	suggestions := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v = strings.TrimSpace(v); v != "" {
				suggestions = append(suggestions, v)
			}
		case map[string]any:
			var decoded suggestionItem
			if err := mapstructure.Decode(v, &decoded); err != nil {
				return nil, fmt.Errorf("decode suggestion: %w", err)
			}
			text := decoded.Text
			if text == "" {
				text = decoded.Suggestion
			}
			if text = strings.TrimSpace(text); text != "" {
				suggestions = append(suggestions, text)
			}
		}
	}

	if len(suggestions) == 0 {
		return nil, errors.New("no suggestions in response")
	}

	return suggestions, nil
}
