// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ContentStore: Knowledge-base chunk persistence and retrieval
//   - SessionStore: Conversation session persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Narrative generation. Without it, reviews fall back to a template summary.
//   - JobPostingFetcher: Job URL fetching/parsing. Without it, reviews score against the knowledge base only.
//   - TextExtractor: PDF text extraction. Without it, only plain-text resumes are accepted.
//   - Messenger: Chat transport. Without it, results are printed locally.
//   - ReviewLogStore: Review activity log. Without it, reviews are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
