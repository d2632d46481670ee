package app

import (
	"fmt"

	"simpletools/internal/creds"
	"simpletools/internal/server"
	"simpletools/internal/simpletools"
	"simpletools/internal/store"
)

// Services holds the wired components of a server process. Everything is
// constructed here and injected; no package-level state.
type Services struct {
	UserStore   *store.UserStore
	Credentials creds.Store
	Provider    *simpletools.Provider
	Server      *server.Server

	// watcher invalidates the credential cache on file changes. nil when
	// the backend is not file-based.
	watcher *creds.Watcher
}

// InitializeServices wires user store, credential store (with cache and,
// for the file backend, a change watcher), provider and MCP server.
func InitializeServices(cfg *Config) (*Services, error) {
	fileConfig := cfg.FileConfig
	if fileConfig == nil {
		return nil, fmt.Errorf("file configuration not loaded")
	}

	backend, err := creds.NewStore(creds.StoreOptions{
		Backend:     fileConfig.Credentials.Backend,
		Environment: fileConfig.Environment,
		Dir:         fileConfig.Credentials.Dir,
		APIBaseURL:  fileConfig.Credentials.APIBaseURL,
		APIKey:      fileConfig.Credentials.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	cache := creds.NewCachingStore(backend, fileConfig.Credentials.CacheTTL)

	var watcher *creds.Watcher
	if fileStore, ok := backend.(*creds.FileStore); ok {
		watcher = creds.NewWatcher(fileStore.BaseDir(), cache.Invalidate)
	}

	userStore := store.NewUserStore()
	provider := simpletools.NewProvider(userStore, cache, fileConfig.Environment)

	srv := server.New(server.Config{
		Transport: fileConfig.Server.Transport,
		Host:      fileConfig.Server.Host,
		Port:      fileConfig.Server.Port,
		UserID:    fileConfig.Server.UserID,
	}, provider, provider)

	return &Services{
		UserStore:   userStore,
		Credentials: cache,
		Provider:    provider,
		Server:      srv,
		watcher:     watcher,
	}, nil
}
