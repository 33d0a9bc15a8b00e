package core

import "context"

// Context keys for execution options
type contextKey string

const suppressProgressKey contextKey = "suppressProgress"

// WithSuppressProgress marks the context so long-running builds stay quiet.
// The MCP server uses it because stdout carries the protocol.
func WithSuppressProgress(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressProgressKey, true)
}

// shouldSuppressProgress returns whether progress output should be suppressed
func shouldSuppressProgress(ctx context.Context) bool {
	val := ctx.Value(suppressProgressKey)
	if val == nil {
		return false // default: show progress
	}
	suppress, ok := val.(bool)
	return ok && suppress
}
