package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
)

var (
	reviewJobURL string
	reviewJSON   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [resume-file]",
	Short: "Review a resume",
	Long: `Scores a resume and generates feedback grounded in the knowledge base.
Accepts plain-text or PDF resumes. With --job-url the resume is scored
against the posting's keywords; without it, against the knowledge base
alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewJobURL, "job-url", "", "job posting URL to score against")
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	resumeText, err := loadResume(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result, err := reviewService.Review(cmd.Context(), driving.ReviewRequest{
		ResumeText: resumeText,
		JobURL:     reviewJobURL,
		UserID:     "cli",
	})
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if reviewJSON {
		return outputReviewJSON(cmd, result)
	}
	return outputReviewText(cmd, result)
}

// loadResume reads the resume file, extracting text from PDFs.
func loadResume(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		if textExtractor == nil {
			return "", errors.New("PDF support not configured: install pdftotext (poppler-utils)")
		}
		text, err := textExtractor.Extract(ctx, data)
		if err != nil {
			return "", fmt.Errorf("extract resume text: %w", err)
		}
		return text, nil
	}

	return string(data), nil
}

func outputReviewJSON(cmd *cobra.Command, result *domain.ReviewResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReviewText(cmd *cobra.Command, result *domain.ReviewResult) error {
	cmd.Printf("Confidence: %d/100\n", result.Scoring.ConfidenceScore)

	if result.Posting != nil {
		cmd.Printf("Posting: %s at %s\n", result.Posting.RoleTitle, result.Posting.CompanyName)
	}
	if len(result.Scoring.MatchingKeywords) > 0 {
		cmd.Printf("Matching keywords: %s\n", strings.Join(result.Scoring.MatchingKeywords, ", "))
	}

	cmd.Println()
	cmd.Println(result.Feedback)
	return nil
}
