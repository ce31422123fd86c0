package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes vantage's market
analysis as tools that LLMs can invoke. This lets AI assistants prioritize
features, run competitive gap analysis, and generate development plans.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "vantage": {
        "command": "vantage",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - suggest_features           Prioritized feature suggestions
  - compare_features           Competitive gap analysis
  - generate_development_plan  Phased markdown development plan
  - get_market_leaders         Market leader profiles and stats
  - get_feature_catalog        Candidate feature pools
  - analyze_market_trends      Trend and technology adoption analysis
  - market_readiness_report    Combined readiness report`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "manifest",
				Usage: "Print the MCP server manifest (server.json) and exit",
			},
		},
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	if c.Bool("manifest") {
		manifest, err := mcpserver.GenerateManifest(version)
		if err != nil {
			return err
		}
		fmt.Println(string(manifest))
		return nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	server := mcpserver.NewServer(version, cfg, newLogger(c))
	return server.Run(context.Background())
}
