package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/internal/output"
	"github.com/vantagelabs/vantage/pkg/config"
)

// newFormatter builds the output formatter from global flags.
func newFormatter(c *cli.Context) (*output.Formatter, error) {
	colored := !c.Bool("no-color") && c.String("output") == ""
	return output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), colored)
}

// loadCatalog loads market data with any configured custom overlay.
func loadCatalog(c *cli.Context, cfg *config.Config) *market.Catalog {
	return market.Load(cfg.Data.LeadersFile, newLogger(c))
}

// featureArgs collects features from positional arguments, splitting
// comma-separated values.
func featureArgs(c *cli.Context) []string {
	var features []string
	for _, arg := range c.Args().Slice() {
		for _, part := range strings.Split(arg, ",") {
			if f := strings.TrimSpace(part); f != "" {
				features = append(features, f)
			}
		}
	}
	return features
}

// pct formats a percentage with one decimal.
func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
