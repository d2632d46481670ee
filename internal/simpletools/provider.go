package simpletools

import (
	"context"

	"simpletools/internal/api"
	"simpletools/internal/creds"
	"simpletools/internal/store"
)

// ServiceName is the credential-store service the tools are gated on.
const ServiceName = "simple-tools"

// DefaultUserID is the user attributed to calls when no user is configured,
// which is the common case for a locally run server.
const DefaultUserID = "local"

// Tool names exposed by the provider.
const (
	ToolStoreData    = "store_data"
	ToolRetrieveData = "retrieve_data"
	ToolListData     = "list_data"
)

// Provider exposes the key-value tools and the sample prompt. It holds the
// shared user store and the credential store; the user a call acts on
// arrives per-request via the context.
type Provider struct {
	store       *store.UserStore
	creds       creds.Store
	environment string
}

// NewProvider creates a provider over the given stores. environment
// controls the hint appended to authentication errors: "local" tells the
// caller to run the auth flow.
func NewProvider(userStore *store.UserStore, credentials creds.Store, environment string) *Provider {
	return &Provider{
		store:       userStore,
		creds:       credentials,
		environment: environment,
	}
}

// GetTools implements api.ToolProvider.
func (p *Provider) GetTools() []api.ToolMetadata {
	return []api.ToolMetadata{
		{
			Name:        ToolStoreData,
			Description: "Store a key-value pair in the server",
			Args: []api.ArgMetadata{
				{Name: "key", Type: "string", Required: true, Description: "Key to store the value under"},
				{Name: "value", Type: "string", Required: true, Description: "Value to store"},
			},
		},
		{
			Name:        ToolRetrieveData,
			Description: "Retrieve a value by its key",
			Args: []api.ArgMetadata{
				{Name: "key", Type: "string", Required: true, Description: "Key to look up"},
			},
		},
		{
			Name:        ToolListData,
			Description: "List all stored key-value pairs",
		},
	}
}

// callerID resolves the user a call is attributed to. The server layer puts
// the configured user into the context; a bare context (tests, embedding)
// falls back to DefaultUserID.
func (p *Provider) callerID(ctx context.Context) string {
	if userID, ok := api.UserIDFromContext(ctx); ok {
		return userID
	}
	return DefaultUserID
}
