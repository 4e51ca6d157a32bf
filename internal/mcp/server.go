// ABOUTME: MCP server setup for the arista activity tracker.
// ABOUTME: Wraps the MCP server around the service facade.
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harperreed/arista/internal/logging"
	"github.com/harperreed/arista/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with facade access.
type Server struct {
	mcpServer *mcp.Server
	svc       service.Service
	logger    *log.Logger
}

// NewServer creates a new MCP server over svc. A nil logger discards output.
func NewServer(svc service.Service, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "arista",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		logger:    logger.WithPrefix("mcp"),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
