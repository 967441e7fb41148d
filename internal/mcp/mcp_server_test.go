package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/repograde/repograde/internal/contract"
	mcp_internal "github.com/repograde/repograde/internal/mcp"
	"github.com/repograde/repograde/internal/reportstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryManager hands out a fresh in-memory store for handler tests.
type memoryManager struct {
	store contract.ReportStore
}

func (m *memoryManager) GetReportStore() contract.ReportStore {
	return m.store
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		FetchTimeout: contract.DefaultFetchTimeout,
	}
	mgr := &memoryManager{store: reportstore.NewMemoryStore()}
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("check_repository rejects malformed URL", func(t *testing.T) {
		tool := s.GetTool("check_repository")
		require.NotNil(t, tool, "Tool check_repository should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "check_repository",
				Arguments: map[string]any{
					"repo_url": "git@github.com:acme/widget.git",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid repository URL")
	})

	t.Run("check_repository rejects bad fetch timeout", func(t *testing.T) {
		tool := s.GetTool("check_repository")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "check_repository",
				Arguments: map[string]any{
					"repo_url":      "https://github.com/acme/widget",
					"fetch_timeout": "not-a-duration",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid fetch timeout")
	})

	t.Run("get_report requires report_id", func(t *testing.T) {
		tool := s.GetTool("get_report")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_report",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "report_id is required")
	})

	t.Run("get_report unknown ID", func(t *testing.T) {
		tool := s.GetTool("get_report")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_report",
				Arguments: map[string]any{
					"report_id": "does-not-exist",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "report not found")
	})

	t.Run("list_reports empty store", func(t *testing.T) {
		tool := s.GetTool("list_reports")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "list_reports",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)
	})
}
