package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP and WebSocket service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and chat WebSocket service.",
	Long: `Serve the fantasy assistant, player lookups, scoring and trending searches over HTTP.

Endpoints:
  GET  /health
  POST /api/chat                      chat reply for {"message": "..."}
  GET  /ws/chat                       WebSocket chat, one reply per message
  GET  /api/players/search?q=         directory search
  GET  /api/players/{id}              player card
  GET  /api/players/{id}/seasons      per-season fantasy breakdown
  GET  /api/players/{id}/projection   next-season projection
  POST /api/score                     score raw category stat lines
  GET  /api/trending                  most searched players
  GET  /api/debug/player/{name}       lookup diagnostics

The service shuts down gracefully on SIGINT or SIGTERM.

Examples:
  gridiron serve --addr :8080 --cors-origins http://localhost:3000
  GRIDIRON_SEARCH_BACKEND=sqlite gridiron serve --log-level debug`,
	Args:    cobra.NoArgs,
	PreRunE: playerSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, env.Resolver, env.Cache, server.NewLogger(cfg.LogLevel))
		if err := srv.Run(ctx); err != nil {
			contract.LogFatal("Server stopped", err)
		}
	},
}
