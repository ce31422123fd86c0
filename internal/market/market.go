// Package market holds the curated competitor dataset and the feature
// pools that analysis runs draw from. The builtin data is read-only; a
// user-supplied JSON file can overlay or extend the leader tables.
package market

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vantagelabs/vantage/pkg/models"
)

// Catalog is the combined view of builtin and custom market data.
type Catalog struct {
	leaders map[string][]models.MarketLeader
}

// Builtin returns a catalog backed by the curated seed data only.
func Builtin() *Catalog {
	return &Catalog{leaders: builtinLeaders}
}

// Categories lists the known market categories in sorted order.
func (c *Catalog) Categories() []string {
	cats := make([]string, 0, len(c.leaders))
	for cat := range c.leaders {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// LeadersFor returns the leader profiles for a category together with
// summary statistics.
func (c *Catalog) LeadersFor(category string) (*models.LeaderAnalysis, error) {
	leaders, ok := c.leaders[category]
	if !ok {
		return nil, fmt.Errorf("unknown market category %q (known: %v)", category, c.Categories())
	}
	return &models.LeaderAnalysis{
		Category: category,
		Leaders:  leaders,
		Stats:    statsFor(leaders),
	}, nil
}

// Pool returns the candidate features of one category.
func Pool(category models.FeatureCategory) []models.Feature {
	return featurePools[category]
}

// AllFeatures returns every candidate feature across all pools in a
// fixed order.
func AllFeatures() []models.Feature {
	var all []models.Feature
	for _, cat := range poolOrder {
		all = append(all, featurePools[cat]...)
	}
	return all
}

// TrendPool returns the emerging-trend candidates.
func TrendPool() []models.Feature {
	return featurePools[models.CategoryEmergingTrends]
}

func statsFor(leaders []models.MarketLeader) models.MarketStats {
	if len(leaders) == 0 {
		return models.MarketStats{}
	}

	valuations := make([]float64, len(leaders))
	employees := make([]float64, len(leaders))
	var totalUsers int64
	segments := make(map[string]struct{})

	for i, l := range leaders {
		valuations[i] = l.Valuation
		employees[i] = float64(l.Employees)
		totalUsers += l.Users
		for _, s := range l.MarketSegments {
			segments[s] = struct{}{}
		}
	}

	maxVal := valuations[0]
	for _, v := range valuations[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	return models.MarketStats{
		LeaderCount:      len(leaders),
		MeanValuation:    stat.Mean(valuations, nil),
		MaxValuation:     maxVal,
		StdDevValuation:  stat.StdDev(valuations, nil),
		TotalUsers:       totalUsers,
		MeanEmployees:    stat.Mean(employees, nil),
		DistinctSegments: len(segments),
	}
}
