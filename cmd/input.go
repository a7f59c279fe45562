package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/extract"
	"github.com/spigell/resume-analyzer/internal/store"

	"github.com/spf13/cobra"
)

var errMissingJob = errors.New("a job description is required (use --job or --job-text)")

// addInputFlags registers the resume and job description flags shared by analyze and score.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("resume", "r", "", "path to the resume (txt or docx)")
	cmd.Flags().String("job", "", "path to a plain text job description")
	cmd.Flags().String("job-text", "", "the job description itself")
	cmd.Flags().Bool("summary", false, "print a short human readable summary instead of json")

	cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsMutuallyExclusive("job", "job-text")
}

// readRequest loads the resume file and the job description named by the flags.
func readRequest(cmd *cobra.Command) (analysis.Request, error) {
	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job")
	jobText, _ := cmd.Flags().GetString("job-text")

	data, err := os.ReadFile(resumePath)
	if err != nil {
		return analysis.Request{}, fmt.Errorf("reading resume: %w", err)
	}

	name := filepath.Base(resumePath)
	resumeText, err := extract.FromFile(name, "", data)
	if err != nil {
		return analysis.Request{}, err
	}

	if jobPath != "" {
		job, err := os.ReadFile(jobPath)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("reading job description: %w", err)
		}
		jobText = string(job)
	}

	if strings.TrimSpace(jobText) == "" {
		return analysis.Request{}, errMissingJob
	}

	return analysis.Request{
		FileName:       name,
		ResumeText:     resumeText,
		JobDescription: jobText,
	}, nil
}

func printJSON(w io.Writer, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}

func printSummary(w io.Writer, report *analysis.Report) {
	fmt.Fprintf(w, "ATA score:        %d\n", report.ATAScore)
	fmt.Fprintf(w, "Keyword score:    %d\n", report.KeywordScore)
	fmt.Fprintf(w, "Semantic score:   %d\n", report.SemanticScore)
	fmt.Fprintf(w, "Formatting score: %d\n", report.FormattingScore)
	fmt.Fprintf(w, "Matched keywords: %s\n", joinOrNone(report.Breakdown.MatchedKeywords))
	fmt.Fprintf(w, "Missing keywords: %s\n", joinOrNone(report.Breakdown.MissingKeywords))

	if len(report.Breakdown.Suggestions) > 0 {
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range report.Breakdown.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	if report.RevisedSnippet != "" {
		fmt.Fprintf(w, "Revised summary:\n  %s\n", report.RevisedSnippet)
	}
}

func printReport(cmd *cobra.Command, report *analysis.Report) error {
	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		printSummary(cmd.OutOrStdout(), report)
		return nil
	}
	return printJSON(cmd.OutOrStdout(), report)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// recordLabel is how a saved analysis is shown in lists and prompts.
func recordLabel(rec store.Record) string {
	return fmt.Sprintf("%s %s / %s / ATA %d",
		rec.ID, rec.CreatedAt.UTC().Format("2006-01-02 15:04"), rec.FileName, rec.Report.ATAScore,
	)
}
