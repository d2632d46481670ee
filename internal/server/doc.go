// Package server exposes api.ToolProvider and api.PromptProvider
// implementations over the Model Context Protocol.
//
// One Server serves one transport: stdio (the default, for editor and
// agent integrations that spawn the process), SSE, or streamable HTTP.
// Start registers every tool and prompt the providers declare and begins
// serving; Stop shuts the transport down gracefully.
//
// The adapter keeps two error channels deliberately distinct: provider
// errors (invalid arguments, unknown names) propagate as protocol faults,
// while authentication failures arrive from the provider as readable text
// results and pass through untouched.
//
// Each incoming call is attributed to the configured user by stamping the
// request context (api.WithUserID) before dispatch.
package server
