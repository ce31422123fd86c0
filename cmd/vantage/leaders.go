package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/output"
)

func leadersCmd() *cli.Command {
	return &cli.Command{
		Name:  "leaders",
		Usage: "Show market leader profiles for a category",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"C"},
				Usage:   "Market category: saas, ecommerce, fintech, social, marketplace, healthtech",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Show only the first N leaders",
			},
		},
		Action: runLeadersCmd,
	}
}

func runLeadersCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	category := c.String("category")
	if category == "" {
		category = cfg.Defaults.Category
	}

	catalog := loadCatalog(c, cfg)
	analysis, err := catalog.LeadersFor(category)
	if err != nil {
		return err
	}

	// Stats keep describing the whole category; top only trims the listing.
	if top := c.Int("top"); top > 0 && top < len(analysis.Leaders) {
		analysis.Leaders = analysis.Leaders[:top]
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	rows := make([][]string, 0, len(analysis.Leaders))
	for _, l := range analysis.Leaders {
		rows = append(rows, []string{
			l.Name,
			fmt.Sprintf("$%.1fB", l.Valuation),
			fmt.Sprintf("%d", l.FoundedYear),
			fmt.Sprintf("%d", l.Users),
			l.PricingModel,
			strings.Join(l.MarketSegments, ", "),
		})
	}

	stats := analysis.Stats
	report := &output.Report{
		Title: fmt.Sprintf("Market Leaders: %s", category),
		Sections: []output.Renderable{
			output.NewTable("", []string{"Company", "Valuation", "Founded", "Users", "Pricing", "Segments"}, rows, nil, nil),
			&output.Section{
				Title: "Category Stats",
				Content: fmt.Sprintf(
					"Leaders: %d  Mean valuation: $%.1fB  Max: $%.1fB  StdDev: $%.1fB\nTotal users: %d  Mean employees: %.0f  Distinct segments: %d",
					stats.LeaderCount,
					stats.MeanValuation,
					stats.MaxValuation,
					stats.StdDevValuation,
					stats.TotalUsers,
					stats.MeanEmployees,
					stats.DistinctSegments,
				),
			},
		},
		Data: analysis,
	}

	return formatter.Output(report)
}
