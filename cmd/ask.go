package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/gridiron/internal/assistant"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/spf13/cobra"
)

// askCmd answers a free-text question with the chat assistant.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the fantasy assistant a question.",
	Long: `Send one message to the keyword-driven fantasy assistant and print the reply.

The assistant understands recommendations, comparisons, player lookups, rankings,
projections and general advice.

Examples:
  gridiron ask "recommend a running back"
  gridiron ask "compare Lamar Jackson vs Josh Allen"
  gridiron ask "project Jahmyr Gibbs for next season"`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: playerSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		reply, err := assistant.New(env.Resolver).Respond(rootCtx, strings.Join(args, " "))
		if err != nil {
			contract.LogFatal("Cannot answer question", err)
		}
		fmt.Println(reply)
	},
}
