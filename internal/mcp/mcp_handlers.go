package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/assistant"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	resolver  *core.Resolver
	assistant *assistant.Assistant
	mgr       contract.CacheManager
}

// withConfig returns a resolver sharing the data sources but using cfg.
func (h *toolHandler) withConfig(cfg *contract.Config) *core.Resolver {
	return core.NewResolver(cfg, h.resolver.Provider(), h.resolver.Directory(), h.resolver.Leaderboard())
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleScorePlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(request.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	cfg := h.resolver.Config().Clone()
	if season := request.GetInt("season", 0); season > 0 {
		cfg.Season = season
	}

	report, err := h.withConfig(cfg).Report(core.WithSuppressProgress(ctx), name, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed for %q: %v", name, err)), nil
	}
	return jsonResult(report), nil
}

func (h *toolHandler) handleProjectPlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(request.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	cfg := h.resolver.Config().Clone()
	cfg.Situation = schema.SituationalFactors{
		InjuryHistory:           request.GetBool("injury", false),
		NewTeam:                 request.GetBool("new_team", false),
		NewOffensiveCoordinator: request.GetBool("new_coordinator", false),
	}

	report, err := h.withConfig(cfg).Report(core.WithSuppressProgress(ctx), name, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("projection failed for %q: %v", name, err)), nil
	}
	if report.Projection == nil || report.Projection.Error != "" {
		return mcp.NewToolResultError(fmt.Sprintf("cannot project %s: not enough historical data", report.Player.Name)), nil
	}
	return jsonResult(report.Projection), nil
}

func (h *toolHandler) handleComparePlayers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	first := strings.TrimSpace(request.GetString("first", ""))
	second := strings.TrimSpace(request.GetString("second", ""))
	if first == "" || second == "" {
		return mcp.NewToolResultError("both first and second player names are required"), nil
	}

	result, err := h.resolver.Compare(core.WithSuppressProgress(ctx), first, second)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleTopPlayers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	board := h.resolver.Leaderboard()
	if board.Len() == 0 {
		return mcp.NewToolResultError(core.ErrEmptyLeaderboard.Error()), nil
	}
	limit := request.GetInt("limit", h.resolver.Config().ResultLimit)

	var entries []schema.LeaderboardEntry
	if position := request.GetString("position", ""); position != "" {
		entries = board.TopByPosition(schema.NormalizePosition(position), limit)
	} else {
		entries = board.Top(limit)
	}
	return jsonResult(schema.RankEntries(entries)), nil
}

func (h *toolHandler) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := strings.TrimSpace(request.GetString("message", ""))
	if message == "" {
		return mcp.NewToolResultError("message is required"), nil
	}
	reply, err := h.assistant.Respond(ctx, message)
	if err != nil {
		return mcp.NewToolResultError(assistant.Fallback), nil
	}
	return mcp.NewToolResultText(reply), nil
}

func (h *toolHandler) handleTrendingPlayers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.mgr == nil || h.mgr.GetSearchStore() == nil {
		return mcp.NewToolResultError(core.ErrSearchesDisabled.Error()), nil
	}
	limit := request.GetInt("limit", h.resolver.Config().ResultLimit)

	records, err := h.mgr.GetSearchStore().Trending(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load trending players: %v", err)), nil
	}
	return jsonResult(records), nil
}
