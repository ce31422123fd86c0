package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/advisor"
	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/internal/output"
)

func trendsCmd() *cli.Command {
	return &cli.Command{
		Name:  "trends",
		Usage: "Analyze emerging trends and leader technology adoption",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"C"},
				Usage:   "Market category: saas, ecommerce, fintech, social, marketplace, healthtech",
			},
		},
		Action: runTrendsCmd,
	}
}

func runTrendsCmd(c *cli.Context) error {
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

	result := advisor.AnalyzeTrends(category, leaderAnalysis.Leaders, market.TrendPool())

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	trendRows := make([][]string, 0, len(result.Trends))
	for _, tr := range result.Trends {
		trendRows = append(trendRows, []string{tr.Name, string(tr.Effort), fmt.Sprintf("%.0f", tr.Score)})
	}

	techRows := make([][]string, 0, len(result.Technologies))
	for _, tech := range result.Technologies {
		techRows = append(techRows, []string{tech.Technology, fmt.Sprintf("%d", tech.Leaders), pct(tech.Adoption)})
	}

	report := &output.Report{
		Title: fmt.Sprintf("Market Trends: %s", category),
		Sections: []output.Renderable{
			output.NewTable("Emerging Features", []string{"Feature", "Effort", "Score"}, trendRows, nil, nil),
			output.NewTable("Technology Adoption", []string{"Technology", "Leaders", "Adoption"}, techRows,
				[]string{"", "", fmt.Sprintf("mean %s", pct(result.Summary.MeanTechAdoption))}, nil),
		},
		Data: result,
	}

	return formatter.Output(report)
}
