package creds

import (
	"fmt"
)

// Backend names selectable via StoreOptions.Backend.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// StoreOptions selects and configures a credential backend without tying
// this package to the application's configuration types.
type StoreOptions struct {
	// Backend forces "local" or "remote". Empty derives the backend from
	// Environment: local development uses files, everything else the
	// hosted service.
	Backend string

	// Environment is the deployment environment name, e.g. "local".
	Environment string

	// Dir overrides the FileStore base directory.
	Dir string

	// APIBaseURL overrides the HTTPStore base URL.
	APIBaseURL string

	// APIKey is the bearer token for the hosted service.
	APIKey string
}

// NewStore builds the credential store the options describe.
func NewStore(opts StoreOptions) (Store, error) {
	backend := opts.Backend
	if backend == "" {
		if opts.Environment == "" || opts.Environment == "local" {
			backend = BackendLocal
		} else {
			backend = BackendRemote
		}
	}

	switch backend {
	case BackendLocal:
		return NewFileStore(opts.Dir)
	case BackendRemote:
		return NewHTTPStore(opts.APIBaseURL, opts.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown credential backend %q (valid: %s, %s)",
			backend, BackendLocal, BackendRemote)
	}
}
