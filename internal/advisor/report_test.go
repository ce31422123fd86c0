package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagelabs/vantage/pkg/models"
)

func TestReportRunsAllAnalyses(t *testing.T) {
	leaders := []models.MarketLeader{
		{
			Name:         "A",
			KeyFeatures:  []string{"payments", "search"},
			Technologies: []string{"machine learning"},
		},
		{
			Name:         "B",
			KeyFeatures:  []string{"payments"},
			Technologies: []string{"machine learning", "webrtc"},
		},
	}
	candidates := []models.Feature{
		feature("Public API", models.CategoryCompetitive, models.EffortHigh),
		feature("Dark Mode", models.CategoryUserExperience, models.EffortLow),
	}
	trendPool := []models.Feature{
		feature("Voice Interface", models.CategoryEmergingTrends, models.EffortHigh),
	}

	reporter := NewReporter(NewPrioritizer(WithMaxSuggestions(1)), NewGapAnalyzer())
	report := reporter.Report("fintech", leaders, candidates, trendPool, []string{"search"})

	assert.Equal(t, "fintech", report.Category)
	assert.False(t, report.GeneratedAt.IsZero())

	require.NotNil(t, report.Gaps)
	require.NotNil(t, report.Suggestions)
	require.NotNil(t, report.Trends)

	assert.Len(t, report.Suggestions.Suggestions, 1)
	assert.Equal(t, 1, report.Gaps.Summary.PresentCount)
	assert.Equal(t, 1, report.Trends.Summary.TrendCount)
	assert.Equal(t, report.Gaps.Summary.Readiness, report.Verdict)
}

func TestReportVerdictTracksGapScore(t *testing.T) {
	// Everything present, so the verdict must be excellent.
	leaders := []models.MarketLeader{
		{Name: "A", KeyFeatures: []string{"payments"}},
	}

	reporter := NewReporter(NewPrioritizer(), NewGapAnalyzer())
	report := reporter.Report("saas", leaders, nil, nil, []string{"payments"})

	assert.Equal(t, models.ReadinessExcellent, report.Verdict)
	assert.Equal(t, 0.0, report.Gaps.Summary.GapScore)
}
