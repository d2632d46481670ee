package creds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"simpletools/pkg/logging"
)

// DefaultAPIBaseURL is the hosted credential service queried when no
// override is configured.
const DefaultAPIBaseURL = "https://api.gumloop.com/api/v1"

// defaultHTTPTimeout bounds a single credential lookup against the hosted
// service.
const defaultHTTPTimeout = 30 * time.Second

// HTTPStore resolves credentials from the hosted credential service. It is
// read-only from this side: the service manages credential writes through
// its own product surface, not through this client.
type HTTPStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// HTTPStoreOption configures an HTTPStore.
type HTTPStoreOption func(*HTTPStore)

// WithHTTPClient sets a custom HTTP client for the store, e.g. to tune
// timeouts or inject a test transport.
func WithHTTPClient(httpClient *http.Client) HTTPStoreOption {
	return func(s *HTTPStore) {
		s.httpClient = httpClient
	}
}

// NewHTTPStore creates a credential store backed by the hosted service at
// baseURL. An empty baseURL selects the default production endpoint. apiKey
// is the bearer token the service authenticates this process with.
func NewHTTPStore(baseURL, apiKey string, opts ...HTTPStoreOption) *HTTPStore {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	s := &HTTPStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get fetches the credentials for a (service, user) pair from
// GET {base}/auth/{service}/credentials?user_id={user}. Every non-200
// response reads as missing credentials; the service does not distinguish
// "no such user" from "no key stored".
func (s *HTTPStore) Get(ctx context.Context, service, userID string) (Credentials, error) {
	endpoint := fmt.Sprintf("%s/auth/%s/credentials?user_id=%s",
		s.baseURL, url.PathEscape(service), url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to build credential request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Credentials{}, fmt.Errorf("credential request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Debug("CredsHTTP", "Credential lookup for %s user %s returned status %d",
			service, userID, resp.StatusCode)
		return Credentials{}, fmt.Errorf("%w for %s user %s (status %d)",
			ErrNotFound, service, userID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credential response: %w", err)
	}

	var credentials Credentials
	if err := json.Unmarshal(body, &credentials); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credential response: %w", err)
	}

	return credentials, nil
}

// Save is not supported by the hosted service.
func (s *HTTPStore) Save(ctx context.Context, service, userID string, credentials Credentials) error {
	return fmt.Errorf("%w: the hosted credential service manages its own writes", ErrReadOnly)
}
