package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for revu resources.
	uriScheme = "revu://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing knowledge-base chunks.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "content",
		Name:        "content",
		Description: "All knowledge-base chunks the reviewer grounds feedback in",
		MIMEType:    "application/json",
	}, s.handleContentResource)

	// Template for individual chunk text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "content/{chunkId}",
		Name:        "content-chunk",
		Description: "Text of a specific knowledge-base chunk",
		MIMEType:    "text/plain",
	}, s.handleChunkResource)
}

// handleContentResource returns a listing of all stored chunks.
func (s *Server) handleContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	chunks, err := s.ports.Content.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}

	type chunkInfo struct {
		ID           string   `json:"id"`
		SectionTitle string   `json:"section_title"`
		SourceName   string   `json:"source_name"`
		Topics       []string `json:"topics,omitempty"`
	}

	infos := make([]chunkInfo, len(chunks))
	for i := range chunks {
		infos[i] = chunkInfo{
			ID:           chunks[i].ID,
			SectionTitle: chunks[i].SectionTitle,
			SourceName:   chunks[i].SourceName,
			Topics:       chunks[i].Topics,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleChunkResource returns the text of a specific chunk.
func (s *Server) handleChunkResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	chunkID := extractChunkID(req.Params.URI)
	if chunkID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	chunks, err := s.ports.Content.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}

	for i := range chunks {
		if chunks[i].ID != chunkID {
			continue
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     chunks[i].Content,
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractChunkID extracts the chunk ID from a URI like revu://content/{chunkId}.
func extractChunkID(uri string) string {
	const prefix = uriScheme + "content/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
