// Package cli implements the revu command-line interface.
package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services wired by the composition root before Execute.
var (
	reviewService       driving.ReviewService
	contentService      driving.ContentService
	conversationService driving.ConversationService
	textExtractor       driven.TextExtractor
	webhookHandler      http.Handler
	configStore         driven.ConfigStore
)

// Services bundles everything the commands need.
type Services struct {
	Review       driving.ReviewService
	Content      driving.ContentService
	Conversation driving.ConversationService

	// Extractor converts PDF resumes to text, may be nil.
	Extractor driven.TextExtractor

	// Webhook serves inbound chat messages for `revu serve`, may be nil.
	Webhook http.Handler

	// Config backs the `revu config` command, may be nil.
	Config driven.ConfigStore
}

// SetServices injects service implementations into the commands.
func SetServices(s Services) {
	reviewService = s.Review
	contentService = s.Content
	conversationService = s.Conversation
	textExtractor = s.Extractor
	webhookHandler = s.Webhook
	configStore = s.Config
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "revu",
	Short: "Resume review against job postings",
	Long: `Revu reviews resumes against job postings, scoring keyword overlap
and grounding feedback in a curated knowledge base of career advice.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
