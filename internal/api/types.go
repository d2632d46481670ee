package api

import (
	"context"
)

// CallToolResult represents the result of a tool call.
type CallToolResult struct {
	Content []interface{} `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolMetadata describes a tool that can be exposed
type ToolMetadata struct {
	Name        string // e.g., "store_data", "retrieve_data", "list_data"
	Description string
	Args        []ArgMetadata
}

// ArgMetadata describes a tool argument
type ArgMetadata struct {
	Name        string
	Type        string // "string", "number", "boolean", "object"
	Required    bool
	Description string
	Default     interface{}
}

// ToolProvider is implemented by components that expose tools to the MCP
// server layer.
type ToolProvider interface {
	// Returns all tools this provider offers
	GetTools() []ToolMetadata

	// Executes a tool by name
	ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*CallToolResult, error)
}

// PromptMetadata describes a prompt that can be exposed
type PromptMetadata struct {
	Name        string
	Description string
}

// PromptMessage is a single message of a rendered prompt.
type PromptMessage struct {
	Role string // "user" or "assistant"
	Text string
}

// PromptResult is the rendered form of a prompt.
type PromptResult struct {
	Description string
	Messages    []PromptMessage
}

// PromptProvider is implemented by components that expose prompts to the
// MCP server layer.
type PromptProvider interface {
	// Returns all prompts this provider offers
	GetPrompts() []PromptMetadata

	// Renders a prompt by name
	GetPrompt(ctx context.Context, promptName string, args map[string]string) (*PromptResult, error)
}

// userIDKey is the context key carrying the user attributed to a request.
// The user travels in the context so that nothing request-scoped ever lives
// as a mutable field on a shared server object.
type userIDKey struct{}

// WithUserID returns a context carrying the given user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext extracts the user ID from the context. The second return
// is false when no user was attached.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}
