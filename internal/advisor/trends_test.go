package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagelabs/vantage/pkg/models"
)

func TestAnalyzeTrendsScoresWithoutModifiers(t *testing.T) {
	pool := []models.Feature{
		{
			Name:       "Real Time Collaboration",
			Effort:     models.EffortVeryHigh,
			Impact:     models.ImpactHigh,
			Importance: models.ImportanceMedium,
			Category:   models.CategoryEmergingTrends,
		},
		{
			Name:       "Voice Interface",
			Effort:     models.EffortHigh,
			Impact:     models.ImpactLow,
			Importance: models.ImportanceLow,
			Category:   models.CategoryEmergingTrends,
		},
	}

	analysis := AnalyzeTrends("saas", nil, pool)

	require.Len(t, analysis.Trends, 2)
	assert.Equal(t, "Real Time Collaboration", analysis.Trends[0].Name)
	assert.Equal(t, pool[0].BaseScore(), analysis.Trends[0].Score)
	assert.Equal(t, pool[1].BaseScore(), analysis.Trends[1].Score)
	assert.Equal(t, 2, analysis.Summary.TrendCount)
}

func TestTechnologyTable(t *testing.T) {
	leaders := []models.MarketLeader{
		{Name: "A", Technologies: []string{"machine learning", "rest apis"}},
		{Name: "B", Technologies: []string{"Machine Learning", "webrtc"}},
		{Name: "C", Technologies: []string{"machine learning", "rest apis", "rest apis"}},
	}

	rows := technologyTable(leaders)

	require.Len(t, rows, 3)
	assert.Equal(t, "machine learning", rows[0].Technology)
	assert.Equal(t, 3, rows[0].Leaders)
	assert.InDelta(t, 100.0, rows[0].Adoption, 0.001)
	assert.Equal(t, "rest apis", rows[1].Technology)
	assert.Equal(t, 2, rows[1].Leaders)
	assert.Equal(t, "webrtc", rows[2].Technology)
	assert.InDelta(t, 33.333, rows[2].Adoption, 0.001)
}

func TestAnalyzeTrendsSummaryMean(t *testing.T) {
	leaders := []models.MarketLeader{
		{Name: "A", Technologies: []string{"cdn", "webrtc"}},
		{Name: "B", Technologies: []string{"cdn"}},
	}

	analysis := AnalyzeTrends("social", leaders, nil)

	assert.Equal(t, 2, analysis.Summary.TechnologyCount)
	// cdn 100%, webrtc 50%
	assert.InDelta(t, 75.0, analysis.Summary.MeanTechAdoption, 0.001)
	assert.Equal(t, 0, analysis.Summary.TrendCount)
}

func TestAnalyzeTrendsEmptyInputs(t *testing.T) {
	analysis := AnalyzeTrends("saas", nil, nil)

	assert.Empty(t, analysis.Trends)
	assert.Empty(t, analysis.Technologies)
	assert.Equal(t, 0.0, analysis.Summary.MeanTechAdoption)
}
