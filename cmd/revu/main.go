// Command revu reviews resumes against job postings from the terminal,
// over MCP, or through a WhatsApp webhook.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/revu-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/jobboard"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/messaging/twilio"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/pdf"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/storage/snapshot"
	"github.com/custodia-labs/revu-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/revu-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/revu-cli/internal/adapters/driving/webhook"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/core/services"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("init prompt store: %w", err)
	}

	contentStore, err := snapshot.NewStore(filepath.Join(filepath.Dir(configStore.Path()), "content.json"))
	if err != nil {
		return fmt.Errorf("init content store: %w", err)
	}
	defer contentStore.Close()

	// Sessions and the review log live in SQLite; when the database
	// cannot be opened, sessions degrade to process-local memory and
	// logging is skipped.
	var sessions driven.SessionStore
	var reviewLog driven.ReviewLogStore
	if db, err := sqlite.NewStore(""); err == nil {
		defer db.Close()
		sessions = db.SessionStore()
		reviewLog = db.ReviewLogStore()
	} else {
		logger.Warn("Database unavailable: %v (sessions are in-memory, review log disabled)", err)
		sessions = memory.NewSessionStore()
	}

	fetcher := jobboard.NewFetcher()

	var extractor driven.TextExtractor
	if err := pdf.CheckAvailable(); err == nil {
		extractor = pdf.New()
	} else {
		logger.Debug("PDF extraction disabled: %v", err)
	}

	llmService, err := ai.CreateAndValidateLLMService(ctx, ai.SettingsFromConfig(configStore))
	if err != nil {
		logger.Warn("LLM unavailable: %v (feedback degrades to a scoring summary)", err)
		llmService = nil
	}
	if llmService != nil {
		defer llmService.Close()
	}

	messenger := twilio.NewMessenger(twilio.Config{
		AccountSID: configStore.GetString("twilio.account_sid"),
		AuthToken:  configStore.GetString("twilio.auth_token"),
		FromNumber: configStore.GetString("twilio.from_number"),
	})

	reviewService := services.NewReviewService(contentStore, fetcher, llmService, reviewLog)
	reviewService.SetPromptStore(promptStore)
	contentService := services.NewContentService(contentStore)
	conversationService := services.NewConversationService(sessions)

	hook, err := webhook.NewHandler(webhook.Ports{
		Review:       reviewService,
		Conversation: conversationService,
		Extractor:    extractor,
		Messenger:    messenger,
	})
	if err != nil {
		return fmt.Errorf("init webhook handler: %w", err)
	}

	cli.SetServices(cli.Services{
		Review:       reviewService,
		Content:      contentService,
		Conversation: conversationService,
		Extractor:    extractor,
		Webhook:      hook.Routes(),
		Config:       configStore,
	})

	return cli.Execute()
}
