package advisor

import (
	"github.com/vantagelabs/vantage/pkg/models"
)

// GapAnalyzer compares a product's feature list against the features
// market leaders ship.
type GapAnalyzer struct {
	priorityThreshold   float64
	similarityThreshold float64
}

// GapOption configures the GapAnalyzer.
type GapOption func(*GapAnalyzer)

// WithPriorityThreshold sets the market-adoption percentage at which a
// missing feature becomes a critical gap.
func WithPriorityThreshold(threshold float64) GapOption {
	return func(g *GapAnalyzer) {
		if threshold > 0 {
			g.priorityThreshold = threshold
		}
	}
}

// WithGapSimilarityThreshold overrides the fuzzy-match cutoff.
func WithGapSimilarityThreshold(threshold float64) GapOption {
	return func(g *GapAnalyzer) {
		if threshold > 0 {
			g.similarityThreshold = threshold
		}
	}
}

// NewGapAnalyzer creates a gap analyzer with the given options.
func NewGapAnalyzer(opts ...GapOption) *GapAnalyzer {
	g := &GapAnalyzer{
		priorityThreshold:   70,
		similarityThreshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// marketFeature is one row of the leader feature-frequency table.
type marketFeature struct {
	name  string // display name, first spelling seen
	count int
}

// frequencyTable tallies how many leaders ship each feature. Rows keep
// first-seen order so results are stable across runs.
func frequencyTable(leaders []models.MarketLeader) []marketFeature {
	index := make(map[string]int)
	var rows []marketFeature
	for _, leader := range leaders {
		seen := make(map[string]struct{}) // a leader listing a feature twice counts once
		for _, feat := range leader.KeyFeatures {
			key := Normalize(feat)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if i, ok := index[key]; ok {
				rows[i].count++
			} else {
				index[key] = len(rows)
				rows = append(rows, marketFeature{name: feat, count: 1})
			}
		}
	}
	return rows
}

// Analyze classifies every market feature of the category's leaders as
// present in or missing from currentFeatures.
func (g *GapAnalyzer) Analyze(category string, leaders []models.MarketLeader, currentFeatures []string) *models.GapAnalysis {
	table := frequencyTable(leaders)
	totalLeaders := len(leaders)

	analysis := &models.GapAnalysis{
		Category: category,
		Present:  []models.FeatureMatch{},
		Missing:  []models.FeatureGap{},
	}

	for _, row := range table {
		adoption := float64(row.count) / float64(totalLeaders) * 100

		if matched, ok := HasFeature(currentFeatures, row.name, g.similarityThreshold); ok {
			analysis.Present = append(analysis.Present, models.FeatureMatch{
				Name:           row.name,
				MarketAdoption: adoption,
				MatchedAgainst: matched,
			})
			continue
		}

		gap := models.FeatureGap{
			Name:           row.name,
			MarketAdoption: adoption,
			Priority:       g.classify(adoption),
		}
		analysis.Missing = append(analysis.Missing, gap)

		switch gap.Priority {
		case models.GapCritical:
			analysis.Summary.CriticalCount++
		case models.GapOpportunity:
			analysis.Summary.OpportunityCount++
		default:
			analysis.Summary.NiceToHaveCount++
		}
	}

	analysis.Summary.TotalMarketFeatures = len(table)
	analysis.Summary.PresentCount = len(analysis.Present)
	analysis.Summary.MissingCount = len(analysis.Missing)
	analysis.Summary.GapScore = models.CalculateGapScore(
		analysis.Summary.CriticalCount,
		analysis.Summary.OpportunityCount,
		analysis.Summary.TotalMarketFeatures,
	)
	analysis.Summary.Readiness = models.ReadinessFor(analysis.Summary.GapScore)

	return analysis
}

func (g *GapAnalyzer) classify(adoption float64) models.GapPriority {
	switch {
	case adoption >= g.priorityThreshold:
		return models.GapCritical
	case adoption >= 40:
		return models.GapOpportunity
	default:
		return models.GapNiceToHave
	}
}
