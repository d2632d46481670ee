// Package api defines the boundary between the tool provider core and the
// MCP server layer.
//
// The dispatch core (internal/simpletools) implements the ToolProvider and
// PromptProvider interfaces declared here and knows nothing about
// transports or the MCP SDK. The server layer (internal/server) consumes
// these interfaces and converts ToolMetadata and CallToolResult values into
// their SDK representations. Keeping SDK types out of this package keeps
// the core testable without a running server.
//
// # Error Kinds
//
// Three typed errors cover every dispatch failure:
//
//   - AuthenticationError: the credential gate found no usable API key.
//     Rendered as a readable text result (IsError), never a protocol fault.
//   - InvalidArgumentError: required tool arguments missing or empty.
//     Propagated as a Go error for the protocol layer to report.
//   - UnknownToolError: dispatch for a name no tool matches. Propagated
//     like InvalidArgumentError.
//
// not_found and empty outcomes are NOT errors; they are ordinary result
// variants produced by the tools themselves.
//
// # Request Context
//
// The user a call is attributed to travels in the context.Context
// (WithUserID / UserIDFromContext), never as a mutable field on a shared
// object, so concurrent calls for different users cannot observe each
// other's identity.
package api
