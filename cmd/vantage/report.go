package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/advisor"
	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/internal/output"
	"github.com/vantagelabs/vantage/pkg/models"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Run the full market-readiness report",
		ArgsUsage: "[current feature...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"C"},
				Usage:   "Market category: saas, ecommerce, fintech, social, marketplace, healthtech",
			},
			&cli.StringFlag{
				Name:  "focus",
				Usage: "Feature category to boost in suggestions",
			},
			&cli.StringFlag{
				Name:  "budget",
				Usage: "Implementation budget: low, medium, high, unlimited",
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "Maximum suggestions in the report",
			},
		},
		Action: runReportCmd,
	}
}

func runReportCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	category := c.String("category")
	if category == "" {
		category = cfg.Defaults.Category
	}
	focus := c.String("focus")
	if focus == "" {
		focus = cfg.Defaults.Focus
	}
	budget := c.String("budget")
	if budget == "" {
		budget = cfg.Defaults.Budget
	}
	maxSuggestions := c.Int("max")
	if maxSuggestions <= 0 {
		maxSuggestions = cfg.Defaults.MaxSuggestions
	}

	catalog := loadCatalog(c, cfg)
	leaderAnalysis, err := catalog.LeadersFor(category)
	if err != nil {
		return err
	}

	reporter := advisor.NewReporter(
		advisor.NewPrioritizer(
			advisor.WithFocus(focus),
			advisor.WithBudget(models.Budget(budget)),
			advisor.WithMaxSuggestions(maxSuggestions),
			advisor.WithSimilarityThreshold(cfg.Thresholds.Similarity),
		),
		advisor.NewGapAnalyzer(
			advisor.WithPriorityThreshold(cfg.Thresholds.PriorityThreshold),
			advisor.WithGapSimilarityThreshold(cfg.Thresholds.Similarity),
		),
	)
	result := reporter.Report(category, leaderAnalysis.Leaders, market.AllFeatures(), market.TrendPool(), featureArgs(c))

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	verdict := string(result.Verdict)
	if formatter.Colored() {
		verdict = output.ReadinessColor(string(result.Verdict), verdict)
	}

	missingRows := make([][]string, 0, len(result.Gaps.Missing))
	for _, g := range result.Gaps.Missing {
		priority := string(g.Priority)
		if formatter.Colored() {
			priority = output.PriorityColor(string(g.Priority), priority)
		}
		missingRows = append(missingRows, []string{g.Name, pct(g.MarketAdoption), priority})
	}

	suggestionRows := make([][]string, 0, len(result.Suggestions.Suggestions))
	for i, s := range result.Suggestions.Suggestions {
		suggestionRows = append(suggestionRows, []string{
			fmt.Sprintf("%d", i+1), s.Name, string(s.Category), fmt.Sprintf("%.0f", s.Score),
		})
	}

	techRows := make([][]string, 0, len(result.Trends.Technologies))
	for _, tech := range result.Trends.Technologies {
		techRows = append(techRows, []string{tech.Technology, pct(tech.Adoption)})
	}

	report := &output.Report{
		Title: fmt.Sprintf("Market Readiness Report: %s", category),
		Sections: []output.Renderable{
			&output.Section{
				Title: "Verdict",
				Content: fmt.Sprintf("%s (gap score %.1f, %d critical gaps)",
					verdict, result.Gaps.Summary.GapScore, result.Gaps.Summary.CriticalCount),
			},
			output.NewTable("Feature Gaps", []string{"Market Feature", "Adoption", "Priority"}, missingRows, nil, nil),
			output.NewTable("Suggested Features", []string{"#", "Feature", "Category", "Score"}, suggestionRows, nil, nil),
			output.NewTable("Technology Adoption", []string{"Technology", "Adoption"}, techRows, nil, nil),
		},
		Data: result,
	}

	return formatter.Output(report)
}
