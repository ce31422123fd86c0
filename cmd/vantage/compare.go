package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/advisor"
	"github.com/vantagelabs/vantage/internal/output"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare your features against market leaders",
		ArgsUsage: "<feature...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"C"},
				Usage:   "Market category: saas, ecommerce, fintech, social, marketplace, healthtech",
			},
		},
		Action: runCompareCmd,
	}
}

func runCompareCmd(c *cli.Context) error {
	features := featureArgs(c)
	if len(features) == 0 {
		return fmt.Errorf("at least one feature is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	category := c.String("category")
	if category == "" {
		category = cfg.Defaults.Category
	}

	catalog := loadCatalog(c, cfg)
	leaderAnalysis, err := catalog.LeadersFor(category)
	if err != nil {
		return err
	}

	analyzer := advisor.NewGapAnalyzer(
		advisor.WithPriorityThreshold(cfg.Thresholds.PriorityThreshold),
		advisor.WithGapSimilarityThreshold(cfg.Thresholds.Similarity),
	)
	result := analyzer.Analyze(category, leaderAnalysis.Leaders, features)

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	presentRows := make([][]string, 0, len(result.Present))
	for _, m := range result.Present {
		presentRows = append(presentRows, []string{m.Name, pct(m.MarketAdoption), m.MatchedAgainst})
	}

	missingRows := make([][]string, 0, len(result.Missing))
	for _, g := range result.Missing {
		priority := string(g.Priority)
		if formatter.Colored() {
			priority = output.PriorityColor(string(g.Priority), priority)
		}
		missingRows = append(missingRows, []string{g.Name, pct(g.MarketAdoption), priority})
	}

	verdict := string(result.Summary.Readiness)
	if formatter.Colored() {
		verdict = output.ReadinessColor(string(result.Summary.Readiness), verdict)
	}

	report := &output.Report{
		Title: fmt.Sprintf("Competitive Gap Analysis: %s", category),
		Sections: []output.Renderable{
			output.NewTable("Present", []string{"Market Feature", "Adoption", "Matched Against"}, presentRows, nil, nil),
			output.NewTable("Missing", []string{"Market Feature", "Adoption", "Priority"}, missingRows, nil, nil),
			&output.Section{
				Title: "Summary",
				Content: fmt.Sprintf(
					"Market features: %d  Present: %d  Missing: %d\nCritical: %d  Opportunity: %d  Nice to have: %d\nGap score: %.1f  Readiness: %s",
					result.Summary.TotalMarketFeatures,
					result.Summary.PresentCount,
					result.Summary.MissingCount,
					result.Summary.CriticalCount,
					result.Summary.OpportunityCount,
					result.Summary.NiceToHaveCount,
					result.Summary.GapScore,
					verdict,
				),
			},
		},
		Data: result,
	}

	return formatter.Output(report)
}
