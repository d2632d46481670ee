package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"simpletools/internal/api"
	"simpletools/internal/config"
	"simpletools/pkg/logging"
)

// serverName and serverVersion identify this server to MCP clients during
// the initialize handshake.
const (
	serverName    = "simple-tools-server"
	serverVersion = "1.0.0"
)

// Config defines how the server is exposed.
type Config struct {
	Transport string // stdio, sse or streamable-http
	Host      string
	Port      int
	UserID    string // user attributed to every incoming call
}

// Server exposes a tool provider and a prompt provider over a single MCP
// transport.
type Server struct {
	config  Config
	tools   api.ToolProvider
	prompts api.PromptProvider

	server               *server.MCPServer
	sseServer            *server.SSEServer
	streamableHTTPServer *server.StreamableHTTPServer
	stdioServer          *server.StdioServer

	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.RWMutex
}

// New creates a server for the given providers. prompts may be nil for a
// tools-only server.
func New(cfg Config, tools api.ToolProvider, prompts api.PromptProvider) *Server {
	if cfg.UserID == "" {
		cfg.UserID = "local"
	}
	return &Server{
		config:  cfg,
		tools:   tools,
		prompts: prompts,
	}
}

// Start registers the providers on a fresh MCP server and serves it on the
// configured transport. HTTP transports serve in the background; the stdio
// transport reads os.Stdin until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.server != nil {
		s.mu.Unlock()
		return fmt.Errorf("server already started")
	}

	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)
	s.server = mcpServer

	s.registerTools(mcpServer)
	s.registerPrompts(mcpServer)
	s.mu.Unlock()

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case config.TransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
		s.sseServer = server.NewSSEServer(
			mcpServer,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
			}
		}()

	case config.TransportStreamableHTTP:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = server.NewStreamableHTTPServer(mcpServer)
		streamableServer := s.streamableHTTPServer
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
			}
		}()

	case config.TransportStdio:
		fallthrough
	default:
		logging.Info("Server", "Starting MCP server with stdio transport")
		s.stdioServer = server.NewStdioServer(mcpServer)
		stdioServer := s.stdioServer
		listenCtx := s.ctx
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if err := stdioServer.Listen(listenCtx, os.Stdin, os.Stdout); err != nil && listenCtx.Err() == nil {
				logging.Error("Server", err, "Stdio server error")
			}
		}()
	}

	return nil
}

// Stop shuts the transport down and waits for the serving goroutine. The
// given context bounds how long an HTTP shutdown may take on top of the
// built-in 5 second cap.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	// Stops the stdio listener and any background routine.
	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}

	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}

	s.wg.Wait()

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.stdioServer = nil
	s.mu.Unlock()

	logging.Info("Server", "MCP server stopped")
	return nil
}

// Endpoint returns where clients reach the server, based on the transport.
func (s *Server) Endpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.config.Transport {
	case config.TransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", s.config.Host, s.config.Port)
	case config.TransportStreamableHTTP:
		return fmt.Sprintf("http://%s:%d/mcp", s.config.Host, s.config.Port)
	case config.TransportStdio:
		return "stdio"
	default:
		return "stdio"
	}
}
