package cmd

import (
	"github.com/huangsam/gridiron/internal/iocache"
	"github.com/huangsam/gridiron/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Gridiron MCP server",
	Long:    `Launch an MCP server over stdio that lets AI agents score, project and compare players via standard tools.`,
	Args:    cobra.NoArgs,
	PreRunE: playerSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, env.Resolver, iocache.Manager)
	},
}
