package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/advisor"
	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/internal/output"
	"github.com/vantagelabs/vantage/pkg/models"
)

func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Suggest prioritized features to build next",
		ArgsUsage: "[current feature...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "focus",
				Usage: "Feature category to boost: essential, competitive, user_experience, revenue_growth, innovation, emerging_trends, or all",
			},
			&cli.StringFlag{
				Name:  "budget",
				Usage: "Implementation budget: low, medium, high, unlimited",
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "Maximum number of suggestions",
			},
		},
		Action: runSuggestCmd,
	}
}

func runSuggestCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
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

	prioritizer := advisor.NewPrioritizer(
		advisor.WithFocus(focus),
		advisor.WithBudget(models.Budget(budget)),
		advisor.WithMaxSuggestions(maxSuggestions),
		advisor.WithSimilarityThreshold(cfg.Thresholds.Similarity),
	)
	result := prioritizer.Suggest(market.AllFeatures(), featureArgs(c))

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	rows := make([][]string, 0, len(result.Suggestions))
	for i, s := range result.Suggestions {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			string(s.Category),
			string(s.Effort),
			fmt.Sprintf("%.0f", s.Score),
		})
	}

	table := output.NewTable(
		fmt.Sprintf("Feature Suggestions (focus: %s, budget: %s)", focus, budget),
		[]string{"#", "Feature", "Category", "Effort", "Score"},
		rows,
		[]string{"", fmt.Sprintf("%d of %d candidates", result.Summary.ReturnedCount, result.Summary.CandidateCount), "", "", ""},
		result,
	)

	return formatter.Output(table)
}
