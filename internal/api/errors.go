package api

import (
	"errors"
	"fmt"
)

// AuthenticationError indicates that no usable credentials exist for a user.
// Tool handlers render it as a readable text result rather than letting it
// escape to the protocol layer, so the caller always sees a message it can
// act on.
type AuthenticationError struct {
	// UserID is the user whose credential lookup failed
	UserID string

	// Message provides a custom error message if the default format is insufficient
	Message string
}

// Error implements the error interface for AuthenticationError.
func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("no credentials found for user %s", e.UserID)
}

// IsAuthenticationError checks if an error is an AuthenticationError using
// error unwrapping.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewAuthenticationError creates a new AuthenticationError with a custom message.
//
// Example:
//
//	return api.NewAuthenticationError("local", "Simple Tools API key not found for user local.")
func NewAuthenticationError(userID, message string) *AuthenticationError {
	return &AuthenticationError{
		UserID:  userID,
		Message: message,
	}
}

// InvalidArgumentError indicates a tool call with missing or empty required
// arguments. It propagates out of dispatch as a Go error so the protocol
// layer reports it as a call failure.
type InvalidArgumentError struct {
	// Tool is the tool whose arguments were invalid
	Tool string

	// Message describes what was missing
	Message string
}

// Error implements the error interface for InvalidArgumentError.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// IsInvalidArgument checks if an error is an InvalidArgumentError using
// error unwrapping.
func IsInvalidArgument(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
//
// Example:
//
//	return api.NewInvalidArgumentError("store_data", "Missing key or value")
func NewInvalidArgumentError(tool, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Tool:    tool,
		Message: message,
	}
}

// UnknownToolError indicates a dispatch request for a tool name this
// provider does not implement. Like InvalidArgumentError it propagates as a
// Go error.
type UnknownToolError struct {
	// Tool is the unrecognized tool name
	Tool string
}

// Error implements the error interface for UnknownToolError.
func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Tool)
}

// IsUnknownTool checks if an error is an UnknownToolError using error
// unwrapping.
func IsUnknownTool(err error) bool {
	var toolErr *UnknownToolError
	return errors.As(err, &toolErr)
}

// NewUnknownToolError creates a new UnknownToolError.
func NewUnknownToolError(tool string) *UnknownToolError {
	return &UnknownToolError{Tool: tool}
}

// UnknownPromptError indicates a request for a prompt name this provider
// does not implement.
type UnknownPromptError struct {
	// Prompt is the unrecognized prompt name
	Prompt string
}

// Error implements the error interface for UnknownPromptError.
func (e *UnknownPromptError) Error() string {
	return fmt.Sprintf("Unknown prompt: %s", e.Prompt)
}

// IsUnknownPrompt checks if an error is an UnknownPromptError using error
// unwrapping.
func IsUnknownPrompt(err error) bool {
	var promptErr *UnknownPromptError
	return errors.As(err, &promptErr)
}

// NewUnknownPromptError creates a new UnknownPromptError.
func NewUnknownPromptError(prompt string) *UnknownPromptError {
	return &UnknownPromptError{Prompt: prompt}
}

// HandleErrorWithPrefix creates a CallToolResult carrying the error as
// readable text. Used for failures the caller should see as a message
// instead of a protocol fault.
//
// Example:
//
//	if err != nil {
//	    return api.HandleErrorWithPrefix(err, "Authentication error"), nil
//	}
func HandleErrorWithPrefix(err error, prefix string) *CallToolResult {
	return &CallToolResult{
		Content: []interface{}{fmt.Sprintf("%s: %v", prefix, err)},
		IsError: true,
	}
}
