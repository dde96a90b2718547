package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
)

// ReviewInput is the input schema for the review_resume tool.
type ReviewInput struct {
	ResumeText string `json:"resume_text" jsonschema:"the plain text of the resume to review"`
	JobURL     string `json:"job_url,omitempty" jsonschema:"optional job posting URL to score the resume against"`
}

// ReviewOutput is the output schema for the review_resume tool.
type ReviewOutput struct {
	ConfidenceScore  int      `json:"confidence_score"`
	MatchingKeywords []string `json:"matching_keywords"`
	JobOverlapScore  float64  `json:"job_overlap_score"`
	ContentRelevance float64  `json:"content_relevance_score"`
	Feedback         string   `json:"feedback"`
	RoleTitle        string   `json:"role_title,omitempty"`
	CompanyName      string   `json:"company_name,omitempty"`
}

// SearchInput is the input schema for the search_content tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query against the knowledge base"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_content tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single knowledge-base result.
type SearchResultOutput struct {
	ChunkID      string   `json:"chunk_id"`
	SectionTitle string   `json:"section_title"`
	SourceName   string   `json:"source_name"`
	Topics       []string `json:"topics,omitempty"`
	Score        float64  `json:"score"`
	Content      string   `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "review_resume",
		Description: "Score a resume against a job posting and the knowledge base, returning feedback",
	}, s.handleReview)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_content",
		Description: "Search the resume-advice knowledge base",
	}, s.handleSearch)
}

// handleReview handles the review_resume tool invocation.
func (s *Server) handleReview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReviewInput,
) (*mcp.CallToolResult, ReviewOutput, error) {
	result, err := s.ports.Review.Review(ctx, driving.ReviewRequest{
		ResumeText: input.ResumeText,
		JobURL:     input.JobURL,
		UserID:     "mcp",
	})
	if err != nil {
		return nil, ReviewOutput{}, err
	}

	output := ReviewOutput{
		ConfidenceScore:  result.Scoring.ConfidenceScore,
		MatchingKeywords: result.Scoring.MatchingKeywords,
		JobOverlapScore:  result.Scoring.JobOverlapScore,
		ContentRelevance: result.Scoring.ContentRelevanceScore,
		Feedback:         result.Feedback,
	}
	if result.Posting != nil {
		output.RoleTitle = result.Posting.RoleTitle
		output.CompanyName = result.Posting.CompanyName
	}

	return nil, output, nil
}

// handleSearch handles the search_content tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if s.ports.Content == nil {
		return nil, SearchOutput{}, errors.New("content service not available")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	results, err := s.ports.Content.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			ChunkID:      results[i].Chunk.ID,
			SectionTitle: results[i].Chunk.SectionTitle,
			SourceName:   results[i].Chunk.SourceName,
			Topics:       results[i].Chunk.Topics,
			Score:        results[i].Score,
			Content:      results[i].Chunk.Content,
		}
	}

	return nil, output, nil
}
