package creds

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound indicates that no credentials exist for a (service, user)
// pair. Backends wrap it with detail; callers test with errors.Is.
var ErrNotFound = errors.New("credentials not found")

// ErrReadOnly indicates a store that cannot persist credentials.
var ErrReadOnly = errors.New("credential store is read-only")

// Credentials holds the API key stored for a (service, user) pair.
type Credentials struct {
	APIKey string `json:"api_key"`
}

// UnmarshalJSON accepts both payload shapes a backend may serve: the object
// form {"api_key": "..."} and a historical bare-string form where the
// payload is the key itself.
func (c *Credentials) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.APIKey = s
		return nil
	}

	type plain Credentials
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Credentials(p)
	return nil
}

// Empty reports whether the credentials carry no usable API key.
func (c Credentials) Empty() bool {
	return c.APIKey == ""
}

// Store is the auth collaborator the dispatch core depends on. Exactly two
// operations; the storage mechanism behind them is opaque.
type Store interface {
	// Get resolves the credentials stored for a (service, user) pair.
	// Lookups that find nothing return an error wrapping ErrNotFound.
	Get(ctx context.Context, service, userID string) (Credentials, error)

	// Save persists credentials for a (service, user) pair.
	Save(ctx context.Context, service, userID string, credentials Credentials) error
}
