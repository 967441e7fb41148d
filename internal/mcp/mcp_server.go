// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/repograde/repograde/internal/contract"
)

// NewMCPServer initializes and configures the repograde MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Repograde Compliance Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: check_repository ---
	s.AddTool(mcp.NewTool("check_repository",
		mcp.WithDescription("Score a public GitHub repository against the compliance rubric and persist the resulting report."),
		mcp.WithString("repo_url", mcp.Description("Repository URL in the form https://github.com/<owner>/<repo>."), mcp.Required()),
		mcp.WithString("fetch_timeout", mcp.Description("Overall fetch deadline (e.g. '60s', '2m').")),
	), h.handleCheckRepository)

	// --- 2. Tool: get_report ---
	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Retrieve a stored compliance report by ID."),
		mcp.WithString("report_id", mcp.Description("The report identifier returned by check_repository."), mcp.Required()),
		mcp.WithString("format", mcp.Description("Response format. Defaults to 'json'."), mcp.Enum("json", "markdown")),
	), h.handleGetReport)

	// --- 3. Tool: list_reports ---
	s.AddTool(mcp.NewTool("list_reports",
		mcp.WithDescription("List stored compliance reports, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleListReports)

	return s
}

// StartMCPServer starts the repograde MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
