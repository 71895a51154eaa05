// Package mcp exposes the content tree to MCP clients over stdio.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/menubot/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Source provides the current content tree.
type Source interface {
	Tree(ctx context.Context) *content.Tree
}

// Server wraps an MCP server that answers questions about the bot content.
type Server struct {
	content Source
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server reading from src.
func NewServer(src Source) *Server {
	s := &Server{content: src}

	s.mcp = server.NewMCPServer(
		"menubot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchContentTool, s.handleSearchContent)
	s.mcp.AddTool(getMenuItemTool, s.handleGetMenuItem)
	s.mcp.AddTool(listFAQTool, s.handleListFAQ)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
