// Package mcp exposes project progress and phase guides as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/appguide"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/guide"
	"github.com/aretw0/appguide/pkg/progress"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Project is the read side of a guided project. *appguide.Guide satisfies it.
type Project interface {
	Summarize() []domain.ProgressSummary
	Preview(index, maxLines int) (string, error)
}

// ProgressResponse is the structured result of phase_progress.
type ProgressResponse struct {
	Phases      []domain.ProgressSummary `json:"phases" jsonschema_description:"Per-phase progress in order"`
	ResumeIndex int                      `json:"resume_index" jsonschema_description:"Phase after the last one with progress (0 when all are done)"`
	Percent     float64                  `json:"percent" jsonschema_description:"Share of phases showing progress"`
}

// GuideArgs are the arguments of phase_guide.
type GuideArgs struct {
	Index    int `json:"index"`
	MaxLines int `json:"max_lines,omitempty"`
}

// GuideResponse is the structured result of phase_guide.
type GuideResponse struct {
	Index   int    `json:"index" jsonschema_description:"Phase index"`
	Preview string `json:"preview" jsonschema_description:"First lines of the phase guide"`
}

// Server exposes a project as an MCP server.
type Server struct {
	project   Project
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(project Project) *Server {
	s := &Server{
		project:   project,
		mcpServer: server.NewMCPServer("appguide-mcp", strings.TrimSpace(appguide.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	progressTool := mcp.NewTool("phase_progress",
		mcp.WithDescription("Report which of the five phases already show progress and where to resume."),
		mcp.WithOutputSchema[ProgressResponse](),
	)
	s.mcpServer.AddTool(progressTool, mcp.NewStructuredToolHandler(s.handleProgress))

	guideTool := mcp.NewTool("phase_guide",
		mcp.WithDescription("Return the first lines of a phase guide."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Phase index, 1 to 5")),
		mcp.WithNumber("max_lines", mcp.Description("Maximum number of lines (default 30)")),
		mcp.WithOutputSchema[GuideResponse](),
	)
	s.mcpServer.AddTool(guideTool, mcp.NewStructuredToolHandler(s.handleGuide))
}

func (s *Server) handleProgress(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProgressResponse, error) {
	sums := s.project.Summarize()
	return ProgressResponse{
		Phases:      sums,
		ResumeIndex: progress.ResumeIndex(sums),
		Percent:     progress.Percent(sums),
	}, nil
}

func (s *Server) handleGuide(ctx context.Context, request mcp.CallToolRequest, args GuideArgs) (GuideResponse, error) {
	lines := args.MaxLines
	if lines <= 0 {
		lines = guide.DefaultPreviewLines
	}
	preview, err := s.project.Preview(args.Index, lines)
	if err != nil {
		return GuideResponse{}, fmt.Errorf("phase %d: %w", args.Index, err)
	}
	return GuideResponse{Index: args.Index, Preview: preview}, nil
}
