// Package analysis runs the full resume-to-job-description match: keyword
// coverage, embedding similarity, formatting and the AI advice on top.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/scoring"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultDisplayLimit = 10

var ErrEmptyInput = errors.New("resume text and job description are required")

// Request is a single resume checked against a single job description.
type Request struct {
	FileName       string
	ResumeText     string
	JobDescription string
}

func (r Request) validate() error {
	if strings.TrimSpace(r.ResumeText) == "" || strings.TrimSpace(r.JobDescription) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Analyzer scores resumes. Embedder is required by Analyze; Advisor is only
// consulted when Suggestions is set.
type Analyzer struct {
	Embedder ai.Embedder
	Advisor  ai.Advisor
	Logger   *zap.Logger

	// DisplayLimit caps matched and missing keywords in the report. Zero means DefaultDisplayLimit.
	DisplayLimit int
	Suggestions  bool
}

// Analyze produces the full report including semantic similarity and, when
// enabled, suggestions and a rewritten summary.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Report, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if a.Embedder == nil {
		return nil, errors.New("embedder is not configured")
	}

	log := logger.WithFields(a.Logger, zap.String("file", req.FileName))

	match := keywordMatch(req)
	log.Debug("keywords matched",
		zap.Int("matched", len(match.Matched)),
		zap.Int("missing", len(match.Missing)),
	)

	resumeVec, jobVec, err := a.embedPair(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		return nil, err
	}
	semantic := scoring.CosineSimilarity(resumeVec, jobVec) * 100
	log.Debug("embeddings compared", zap.Int("dimensions", len(resumeVec)), zap.Float64("semantic", semantic))

	report := a.buildReport(match, semantic, scoring.GradeFormatting(req.ResumeText))

	if a.Suggestions && a.Advisor != nil {
		suggestions, err := a.Advisor.Suggestions(ctx, ai.SuggestionInput{
			Resume:         req.ResumeText,
			JobDescription: req.JobDescription,
			Missing:        match.Missing,
		})
		if err != nil {
			return nil, fmt.Errorf("getting suggestions: %w", err)
		}
		report.Breakdown.Suggestions = suggestions

		snippet, err := a.Advisor.RevisedSummary(ctx, req.ResumeText, req.JobDescription)
		if err != nil {
			return nil, fmt.Errorf("revising summary: %w", err)
		}
		report.RevisedSnippet = snippet
	}

	log.Info("resume analyzed", logger.ScoreFields(report.ATAScore, report.KeywordScore, report.SemanticScore, report.FormattingScore)...)

	return report, nil
}

// Score is the offline variant of Analyze: no model calls, semantic score 0.
func (a *Analyzer) Score(req Request) (*Report, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	report := a.buildReport(keywordMatch(req), 0, scoring.GradeFormatting(req.ResumeText))

	logger.WithFields(a.Logger, zap.String("file", req.FileName)).
		Info("resume scored offline", logger.ScoreFields(report.ATAScore, report.KeywordScore, report.SemanticScore, report.FormattingScore)...)

	return report, nil
}

func keywordMatch(req Request) scoring.MatchResult {
	return scoring.MatchKeywords(
		scoring.ExtractKeywords(req.ResumeText),
		scoring.ExtractKeywords(req.JobDescription),
	)
}

func (a *Analyzer) embedPair(ctx context.Context, resume, job string) ([]float64, []float64, error) {
	var resumeVec, jobVec []float64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := a.Embedder.Embed(gCtx, resume)
		if err != nil {
			return fmt.Errorf("embedding resume: %w", err)
		}
		resumeVec = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Embedder.Embed(gCtx, job)
		if err != nil {
			return fmt.Errorf("embedding job description: %w", err)
		}
		jobVec = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return resumeVec, jobVec, nil
}

// buildReport computes the ATA score from unrounded components and only then
// rounds keyword and semantic scores for display.
func (a *Analyzer) buildReport(match scoring.MatchResult, semantic float64, formatting int) *Report {
	limit := a.DisplayLimit
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}

	return &Report{
		ATAScore:        scoring.CompositeScore(match.Score, semantic, float64(formatting)),
		KeywordScore:    int(scoring.Round(match.Score)),
		SemanticScore:   int(scoring.Round(semantic)),
		FormattingScore: formatting,
		Breakdown: Breakdown{
			MatchedKeywords: firstN(match.Matched, limit),
			MissingKeywords: firstN(match.Missing, limit),
			Suggestions:     []string{},
		},
	}
}
