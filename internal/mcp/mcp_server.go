// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/assistant"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gridiron MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(resolver *core.Resolver, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Gridiron Fantasy Football Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		resolver:  resolver,
		assistant: assistant.New(resolver),
		mgr:       mgr,
	}

	// --- 1. Tool: score_player ---
	s.AddTool(mcp.NewTool("score_player",
		mcp.WithDescription("Score every season of an NFL player and report fantasy points for one season."),
		mcp.WithString("name", mcp.Description("Player name, e.g. 'Lamar Jackson'."), mcp.Required()),
		mcp.WithNumber("season", mcp.Description("Season year to total (defaults to the latest season).")),
	), h.handleScorePlayer)

	// --- 2. Tool: project_player ---
	s.AddTool(mcp.NewTool("project_player",
		mcp.WithDescription("Project next season's fantasy points for an NFL player."),
		mcp.WithString("name", mcp.Description("Player name."), mcp.Required()),
		mcp.WithBoolean("injury", mcp.Description("The player has a recent injury history.")),
		mcp.WithBoolean("new_team", mcp.Description("The player changed teams.")),
		mcp.WithBoolean("new_coordinator", mcp.Description("The offense has a new coordinator.")),
	), h.handleProjectPlayer)

	// --- 3. Tool: compare_players ---
	s.AddTool(mcp.NewTool("compare_players",
		mcp.WithDescription("Compare two NFL players by season fantasy points."),
		mcp.WithString("first", mcp.Description("First player name."), mcp.Required()),
		mcp.WithString("second", mcp.Description("Second player name."), mcp.Required()),
	), h.handleComparePlayers)

	// --- 4. Tool: top_players ---
	s.AddTool(mcp.NewTool("top_players",
		mcp.WithDescription("List the top fantasy players from the precomputed leaderboard."),
		mcp.WithString("position", mcp.Description("Restrict to one position."), mcp.Enum("QB", "RB", "WR", "TE", "K")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleTopPlayers)

	// --- 5. Tool: ask ---
	s.AddTool(mcp.NewTool("ask",
		mcp.WithDescription("Ask the fantasy assistant a free-text question, e.g. 'compare Josh Allen vs Lamar Jackson'."),
		mcp.WithString("message", mcp.Description("The question."), mcp.Required()),
	), h.handleAsk)

	// --- 6. Tool: trending_players ---
	s.AddTool(mcp.NewTool("trending_players",
		mcp.WithDescription("List the most searched players."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleTrendingPlayers)

	return s
}

// StartMCPServer starts the gridiron MCP server on stdio.
func StartMCPServer(_ context.Context, resolver *core.Resolver, mgr contract.CacheManager) error {
	s := NewMCPServer(resolver, mgr)
	return server.ServeStdio(s)
}
