package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/repograde/repograde/core"
	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/internal/ghfetch"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleCheckRepository(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	owner, name, err := contract.ParseRepoURL(request.GetString("repo_url", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository URL: %v", err)), nil
	}
	cfg.Owner = owner
	cfg.Name = name
	cfg.RepoURL = fmt.Sprintf("https://github.com/%s/%s", owner, name)

	if raw := request.GetString("fetch_timeout", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid fetch timeout %q", raw)), nil
		}
		cfg.FetchTimeout = timeout
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = contract.DefaultFetchTimeout
	}

	catalog, err := core.LoadCatalog()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load catalog: %v", err)), nil
	}

	report, err := core.RunCheck(ctx, cfg, catalog, ghfetch.NewFetcher(cfg), h.mgr.GetReportStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reportID := request.GetString("report_id", "")
	if reportID == "" {
		return mcp.NewToolResultError("report_id is required"), nil
	}

	store := h.mgr.GetReportStore()

	if request.GetString("format", "json") == "markdown" {
		doc, err := core.RenderStored(ctx, store, reportID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(doc)), nil
	}

	report, err := store.Get(ctx, reportID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListReports(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reports, err := h.mgr.GetReportStore().List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}

	limit := request.GetInt("limit", contract.DefaultListLimit)
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}

	// Summaries only; full reports come from get_report
	type summary struct {
		ID           string `json:"id"`
		RepoName     string `json:"repo_name"`
		OverallScore int    `json:"overall_score"`
		CreatedAt    string `json:"created_at"`
	}
	summaries := make([]summary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, summary{
			ID:           r.ID,
			RepoName:     r.RepoName,
			OverallScore: r.OverallScore,
			CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
