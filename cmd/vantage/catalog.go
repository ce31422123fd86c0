package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/internal/output"
	"github.com/vantagelabs/vantage/pkg/models"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List the candidate features the prioritizer draws from",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"C"},
				Value:   "all",
				Usage:   "Feature category pool, or all",
			},
		},
		Action: runCatalogCmd,
	}
}

func runCatalogCmd(c *cli.Context) error {
	category := c.String("category")

	var features []models.Feature
	if category == "" || category == "all" {
		features = market.AllFeatures()
	} else {
		features = market.Pool(models.FeatureCategory(category))
		if len(features) == 0 {
			return fmt.Errorf("unknown feature category %q", category)
		}
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	defer formatter.Close()

	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{
			f.Name,
			string(f.Category),
			string(f.Importance),
			string(f.Impact),
			string(f.Effort),
		})
	}

	table := output.NewTable(
		fmt.Sprintf("Feature Catalog (%s)", category),
		[]string{"Feature", "Category", "Importance", "Impact", "Effort"},
		rows,
		[]string{fmt.Sprintf("%d features", len(features)), "", "", "", ""},
		features,
	)

	return formatter.Output(table)
}
