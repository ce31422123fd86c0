// Package mcpserver exposes the market analysis tools over the Model
// Context Protocol stdio transport.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vantagelabs/vantage/internal/logging"
	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/pkg/config"
)

// Server wraps the MCP server and registers all vantage analysis tools.
type Server struct {
	server  *mcp.Server
	cfg     *config.Config
	catalog *market.Catalog
	log     *logging.Logger
}

// NewServer creates an MCP server with all vantage tools registered.
func NewServer(version string, cfg *config.Config, logger *logging.Logger) *Server {
	if version == "" {
		version = "dev"
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vantage",
			Version: version,
		},
		nil,
	)

	s := &Server{
		server:  server,
		cfg:     cfg,
		catalog: market.Load(cfg.Data.LeadersFile, logger),
		log:     logger,
	}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all vantage analysis tools to the server.
func (s *Server) registerTools() {
	// Feature prioritization
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_features",
		Description: describeSuggestFeatures(),
	}, s.handleSuggestFeatures)

	// Competitive gap analysis
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compare_features",
		Description: describeCompareFeatures(),
	}, s.handleCompareFeatures)

	// Development plan generation
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_development_plan",
		Description: describeGeneratePlan(),
	}, s.handleGeneratePlan)

	// Market leader profiles
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_market_leaders",
		Description: describeMarketLeaders(),
	}, s.handleMarketLeaders)

	// Candidate feature catalog
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_feature_catalog",
		Description: describeFeatureCatalog(),
	}, s.handleFeatureCatalog)

	// Trend and technology adoption analysis
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_market_trends",
		Description: describeMarketTrends(),
	}, s.handleMarketTrends)

	// Composite readiness report
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "market_readiness_report",
		Description: describeReadinessReport(),
	}, s.handleReadinessReport)
}
