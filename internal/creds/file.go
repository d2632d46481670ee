package creds

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultCredentialsDir is the default directory for storing credentials,
// relative to the user's home directory.
const DefaultCredentialsDir = ".config/simpletools/credentials"

// credentialsFileSuffix is appended to the user ID to form the file name,
// giving the layout <base>/<service>/<user>_credentials.json.
const credentialsFileSuffix = "_credentials.json"

// FileStore keeps credentials in local JSON files. It backs development and
// self-hosted installations, and is what the `auth` CLI flow writes to.
//
// SECURITY: credential files hold API keys. The base directory is created
// with 0700 and files with 0600 permissions, and key values are never
// logged; audit records carry only the service and user ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-backed credential store rooted at baseDir.
// An empty baseDir selects ~/.config/simpletools/credentials.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, DefaultCredentialsDir)
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	return &FileStore{baseDir: baseDir}, nil
}

// BaseDir returns the directory the store is rooted at.
func (s *FileStore) BaseDir() string {
	return s.baseDir
}

// Path returns the file a (service, user) pair is stored at.
func (s *FileStore) Path(service, userID string) string {
	return filepath.Join(s.baseDir, service, userID+credentialsFileSuffix)
}

// Get reads the credentials stored for a (service, user) pair.
func (s *FileStore) Get(ctx context.Context, service, userID string) (Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// #nosec G304 -- path is assembled from configured base dir and IDs
	data, err := os.ReadFile(s.Path(service, userID))
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, fmt.Errorf("%w for %s user %s", ErrNotFound, service, userID)
		}
		return Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var credentials Credentials
	if err := json.Unmarshal(data, &credentials); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return credentials, nil
}

// Save writes the credentials for a (service, user) pair, creating the
// service directory on first use.
func (s *FileStore) Save(ctx context.Context, service, userID string, credentials Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	serviceDir := filepath.Join(s.baseDir, service)
	if err := os.MkdirAll(serviceDir, 0700); err != nil {
		return fmt.Errorf("failed to create service directory: %w", err)
	}

	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.Path(service, userID), data, 0600); err != nil {
		slog.Warn("SECURITY_AUDIT: credential storage failed",
			"event", "credentials_store_failed",
			"service", service,
			"user_id", userID,
			"error", err.Error(),
		)
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	slog.Info("SECURITY_AUDIT: credentials stored",
		"event", "credentials_stored",
		"service", service,
		"user_id", userID,
	)
	return nil
}

// Users lists the user IDs with credentials stored for a service, in
// directory order. A service with no stored credentials yields an empty
// slice.
func (s *FileStore) Users(service string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.baseDir, service))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read service directory: %w", err)
	}

	var users []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, credentialsFileSuffix) {
			continue
		}
		users = append(users, strings.TrimSuffix(name, credentialsFileSuffix))
	}
	return users, nil
}
