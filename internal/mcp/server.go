// Package mcp provides an MCP (Model Context Protocol) server for syndata.
// It exposes the biosignal generator as tools, so agents can request
// reproducible synthetic sensor data without shelling out to the CLI.
package mcp

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/synheart/syndata/internal/config"
)

// Server wraps the MCP SDK server and provides syndata-specific tools.
type Server struct {
	server *sdk.Server
	cfg    *config.Config
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Name    string         // Server name (e.g. "syndata")
	Version string         // Server version
	Config  *config.Config // Generation defaults and custom scenarios
}

// NewServer creates a new MCP server with the generation tools registered.
func NewServer(cfg *ServerConfig) (*Server, error) {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.Default()
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server: mcpServer,
		cfg:    appCfg,
	}
	s.registerTools()

	return s, nil
}

// registerTools registers all syndata MCP tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "syndata_list_scenarios",
		Description: "List the available emotion scenarios and their statistical parameters",
	}, s.handleListScenarios)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "syndata_generate_scenario",
		Description: "Generate synthetic HR/RR data for a single emotion scenario; a fixed seed makes the output reproducible",
	}, s.handleGenerateScenario)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "syndata_generate_session",
		Description: "Generate a multi-emotion session, optionally with smooth transitions between emotions",
	}, s.handleGenerateSession)
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return s.server.Run(ctx, &sdk.StdioTransport{})
}
