package advisor

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vantagelabs/vantage/pkg/models"
)

// AnalyzeTrends scores the emerging-trend candidates and tallies which
// technologies the category's leaders have adopted. Trend features are
// ranked by base score alone; focus and budget modifiers do not apply.
func AnalyzeTrends(category string, leaders []models.MarketLeader, trendPool []models.Feature) *models.TrendAnalysis {
	trends := make([]models.ScoredFeature, 0, len(trendPool))
	for _, f := range trendPool {
		trends = append(trends, models.ScoredFeature{Feature: f, Score: f.BaseScore()})
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Score > trends[j].Score
	})

	technologies := technologyTable(leaders)

	adoptions := make([]float64, len(technologies))
	for i, t := range technologies {
		adoptions[i] = t.Adoption
	}
	var meanAdoption float64
	if len(adoptions) > 0 {
		meanAdoption = stat.Mean(adoptions, nil)
	}

	return &models.TrendAnalysis{
		Category:     category,
		Trends:       trends,
		Technologies: technologies,
		Summary: models.TrendSummary{
			TrendCount:       len(trends),
			TechnologyCount:  len(technologies),
			MeanTechAdoption: meanAdoption,
		},
	}
}

// technologyTable counts leader technology adoption, most adopted
// first. Ties keep first-seen order.
func technologyTable(leaders []models.MarketLeader) []models.TechnologyAdoption {
	index := make(map[string]int)
	var rows []models.TechnologyAdoption
	for _, leader := range leaders {
		seen := make(map[string]struct{})
		for _, tech := range leader.Technologies {
			key := Normalize(tech)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if i, ok := index[key]; ok {
				rows[i].Leaders++
			} else {
				index[key] = len(rows)
				rows = append(rows, models.TechnologyAdoption{Technology: tech, Leaders: 1})
			}
		}
	}

	if len(leaders) > 0 {
		for i := range rows {
			rows[i].Adoption = float64(rows[i].Leaders) / float64(len(leaders)) * 100
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Leaders > rows[j].Leaders
	})
	return rows
}
