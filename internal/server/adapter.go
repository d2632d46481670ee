package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"simpletools/internal/api"
	"simpletools/pkg/logging"
	pkgstrings "simpletools/pkg/strings"
)

// registerTools converts the provider's tool metadata into SDK tools and
// registers them with per-tool handlers.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	metadata := s.tools.GetTools()
	tools := make([]server.ServerTool, 0, len(metadata))

	for _, toolMeta := range metadata {
		tools = append(tools, server.ServerTool{
			Tool: mcp.Tool{
				Name:        toolMeta.Name,
				Description: toolMeta.Description,
				InputSchema: convertToMCPSchema(toolMeta.Args),
			},
			Handler: s.createToolHandler(toolMeta.Name),
		})
		logging.Debug("Server", "Registered tool %s: %s", toolMeta.Name,
			pkgstrings.TruncateOneLine(toolMeta.Description, pkgstrings.DefaultLogFieldMaxLen))
	}

	mcpServer.AddTools(tools...)
	logging.Info("Server", "Registered %d tools", len(tools))
}

// registerPrompts registers the prompt provider's prompts, if any.
func (s *Server) registerPrompts(mcpServer *server.MCPServer) {
	if s.prompts == nil {
		return
	}

	metadata := s.prompts.GetPrompts()
	prompts := make([]server.ServerPrompt, 0, len(metadata))

	for _, promptMeta := range metadata {
		prompts = append(prompts, server.ServerPrompt{
			Prompt: mcp.Prompt{
				Name:        promptMeta.Name,
				Description: promptMeta.Description,
			},
			Handler: s.createPromptHandler(promptMeta.Name),
		})
	}

	mcpServer.AddPrompts(prompts...)
	logging.Info("Server", "Registered %d prompts", len(prompts))
}

// createToolHandler builds the SDK handler for one tool. It attributes the
// call to the configured user via the context and dispatches to the
// provider. Provider errors (bad arguments, unknown tool) propagate as
// protocol faults; anything the caller should read as a message arrives as
// a text result with IsError set.
func (s *Server) createToolHandler(toolName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]interface{}{}
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		ctx = api.WithUserID(ctx, s.config.UserID)

		result, err := s.tools.ExecuteTool(ctx, toolName, args)
		if err != nil {
			logging.Error("Server", err, "Tool %s failed", toolName)
			return nil, err
		}

		return convertToMCPResult(result), nil
	}
}

// createPromptHandler builds the SDK handler for one prompt.
func (s *Server) createPromptHandler(promptName string) func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := make(map[string]string, len(req.Params.Arguments))
		for k, v := range req.Params.Arguments {
			args[k] = v
		}

		ctx = api.WithUserID(ctx, s.config.UserID)

		result, err := s.prompts.GetPrompt(ctx, promptName, args)
		if err != nil {
			logging.Error("Server", err, "Prompt %s failed", promptName)
			return nil, err
		}

		return convertToMCPPromptResult(result), nil
	}
}

// convertToMCPSchema converts arg metadata to the JSON Schema form MCP
// clients expect.
func convertToMCPSchema(args []api.ArgMetadata) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, arg := range args {
		propSchema := map[string]interface{}{
			"type":        arg.Type,
			"description": arg.Description,
		}
		if arg.Default != nil {
			propSchema["default"] = arg.Default
		}

		properties[arg.Name] = propSchema

		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// convertToMCPResult converts a provider result to the SDK form. String
// content becomes text content directly; anything else is marshaled to
// JSON first.
func convertToMCPResult(result *api.CallToolResult) *mcp.CallToolResult {
	mcpContent := make([]mcp.Content, len(result.Content))

	for i, content := range result.Content {
		if text, ok := content.(string); ok {
			mcpContent[i] = mcp.NewTextContent(text)
		} else {
			jsonBytes, _ := json.Marshal(content)
			mcpContent[i] = mcp.NewTextContent(string(jsonBytes))
		}
	}

	return &mcp.CallToolResult{
		Content: mcpContent,
		IsError: result.IsError,
	}
}

// convertToMCPPromptResult converts a rendered prompt to the SDK form.
func convertToMCPPromptResult(result *api.PromptResult) *mcp.GetPromptResult {
	messages := make([]mcp.PromptMessage, len(result.Messages))

	for i, msg := range result.Messages {
		role := mcp.RoleUser
		if msg.Role == "assistant" {
			role = mcp.RoleAssistant
		}
		messages[i] = mcp.PromptMessage{
			Role:    role,
			Content: mcp.NewTextContent(msg.Text),
		}
	}

	return &mcp.GetPromptResult{
		Description: result.Description,
		Messages:    messages,
	}
}
