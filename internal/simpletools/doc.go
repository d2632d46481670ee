// Package simpletools implements the dispatch core behind the MCP server:
// three tools over a per-user in-memory key-value store, plus one sample
// prompt.
//
// Every tool call runs the authentication gate first: the caller's API key
// is resolved through a creds.Store, and a missing key short-circuits the
// call into a readable "Authentication error: ..." text result. The key
// only proves the user has authenticated; the tools never send it anywhere.
//
// The package implements api.ToolProvider and api.PromptProvider and knows
// nothing about transports or the MCP SDK, which keeps it testable with
// plain fakes.
package simpletools
