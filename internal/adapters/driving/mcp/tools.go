package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/services"
)

// ResolveSubjectInput is the input schema for the resolve_subject tool.
type ResolveSubjectInput struct {
	Catid    string `json:"catid" jsonschema:"the category identifier"`
	Root     string `json:"root,omitempty" jsonschema:"root category name"`
	Sub1     string `json:"sub1,omitempty" jsonschema:"first sub category"`
	Sub2     string `json:"sub2,omitempty" jsonschema:"second sub category"`
	Sub3     string `json:"sub3,omitempty" jsonschema:"third sub category"`
	Sub4     string `json:"sub4,omitempty" jsonschema:"fourth sub category"`
	Sub5     string `json:"sub5,omitempty" jsonschema:"fifth sub category"`
}

// ResolveSubjectOutput is the output schema for the resolve_subject tool.
type ResolveSubjectOutput struct {
	Subject string `json:"subject"`
}

// GenerateIconInput is the input schema for the generate_icon tool.
type GenerateIconInput struct {
	Catid   string `json:"catid" jsonschema:"the category identifier, used as seed for fallback synthesis"`
	Subject string `json:"subject" jsonschema:"the subject to find or synthesize an icon for"`
}

// GenerateIconOutput is the output schema for the generate_icon tool.
type GenerateIconOutput struct {
	Catid            string   `json:"catid"`
	Subject          string   `json:"subject"`
	SVG              string   `json:"svg"`
	PathHash         string   `json:"path_hash"`
	PrimitivesUsed   []string `json:"primitives_used"`
	SourceIcon       string   `json:"source_icon"`
	ValidationPassed bool     `json:"validation_passed"`
	Violations       []string `json:"violations,omitempty"`
}

// SearchIconsInput is the input schema for the search_icons tool.
type SearchIconsInput struct {
	Query string `json:"query" jsonschema:"the icon search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of candidates to return (default 10)"`
}

// SearchIconsOutput is the output schema for the search_icons tool.
type SearchIconsOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
	Count      int               `json:"count"`
}

// CandidateOutput represents a single ranked candidate.
type CandidateOutput struct {
	Title        string `json:"title"`
	SourceURL    string `json:"source_url"`
	Complexity   int    `json:"complexity"`
	Acceptable   bool   `json:"acceptable"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_subject",
		Description: "Resolve a category row to its icon subject (deepest non-empty category field)",
	}, s.handleResolveSubject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_icon",
		Description: "Produce one validated house-style SVG icon for a subject",
	}, s.handleGenerateIcon)

	if s.ports.Source != nil && s.ports.Source.Enabled() {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_icons",
			Description: "Search the configured icon source and rank candidates by simplicity",
		}, s.handleSearchIcons)
	}
}

// handleResolveSubject handles the resolve_subject tool invocation.
func (s *Server) handleResolveSubject(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveSubjectInput,
) (*mcp.CallToolResult, ResolveSubjectOutput, error) {
	row := domain.CategoryRow{
		Catid: input.Catid,
		Fields: map[string]string{
			domain.ColumnRoot: input.Root,
			domain.ColumnSub1: input.Sub1,
			domain.ColumnSub2: input.Sub2,
			domain.ColumnSub3: input.Sub3,
			domain.ColumnSub4: input.Sub4,
			domain.ColumnSub5: input.Sub5,
		},
	}

	subject, err := s.ports.Resolver.Resolve(row)
	if err != nil {
		return nil, ResolveSubjectOutput{}, err
	}
	return nil, ResolveSubjectOutput{Subject: subject}, nil
}

// handleGenerateIcon handles the generate_icon tool invocation.
func (s *Server) handleGenerateIcon(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateIconInput,
) (*mcp.CallToolResult, GenerateIconOutput, error) {
	result, err := s.ports.Maker.Make(ctx, input.Catid, input.Subject)
	if err != nil {
		return nil, GenerateIconOutput{}, err
	}

	return nil, GenerateIconOutput{
		Catid:            result.Catid,
		Subject:          result.Subject,
		SVG:              result.Icon.SVG(),
		PathHash:         result.Icon.PathHash,
		PrimitivesUsed:   result.Icon.PrimitiveKinds(),
		SourceIcon:       result.Decision.SourceIcon(),
		ValidationPassed: result.Status == domain.RowOK,
		Violations:       result.Violations,
	}, nil
}

// handleSearchIcons handles the search_icons tool invocation.
func (s *Server) handleSearchIcons(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchIconsInput,
) (*mcp.CallToolResult, SearchIconsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	candidates, err := s.ports.Source.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchIconsOutput{}, err
	}

	ranked := services.NewRanker().Rank(candidates)
	output := SearchIconsOutput{
		Candidates: make([]CandidateOutput, len(ranked)),
		Count:      len(ranked),
	}
	for i := range ranked {
		output.Candidates[i] = CandidateOutput{
			Title:        ranked[i].Candidate.Title,
			SourceURL:    ranked[i].Candidate.SourceURL,
			Complexity:   ranked[i].Candidate.Complexity,
			Acceptable:   ranked[i].Acceptable,
			RejectReason: ranked[i].RejectReason,
		}
	}
	return nil, output, nil
}
