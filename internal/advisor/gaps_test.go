package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagelabs/vantage/pkg/models"
)

func leaderWith(name string, features ...string) models.MarketLeader {
	return models.MarketLeader{Name: name, KeyFeatures: features}
}

func TestFrequencyTablePreservesFirstSeenOrder(t *testing.T) {
	leaders := []models.MarketLeader{
		leaderWith("A", "payments", "search"),
		leaderWith("B", "Search", "audit logging"), // different casing, same feature
		leaderWith("C", "payments", "payments"),    // duplicate within one leader counts once
	}

	table := frequencyTable(leaders)

	require.Len(t, table, 3)
	assert.Equal(t, "payments", table[0].name)
	assert.Equal(t, 2, table[0].count)
	assert.Equal(t, "search", table[1].name)
	assert.Equal(t, 2, table[1].count)
	assert.Equal(t, "audit logging", table[2].name)
	assert.Equal(t, 1, table[2].count)
}

func TestAnalyzeClassifiesGaps(t *testing.T) {
	// 4 leaders: payments in 4 (100%), search in 3 (75%),
	// audit logging in 2 (50%), dark mode in 1 (25%).
	leaders := []models.MarketLeader{
		leaderWith("A", "payments", "search", "audit logging"),
		leaderWith("B", "payments", "search", "audit logging"),
		leaderWith("C", "payments", "search"),
		leaderWith("D", "payments", "dark mode"),
	}

	analysis := NewGapAnalyzer().Analyze("fintech", leaders, []string{"search"})

	assert.Equal(t, "fintech", analysis.Category)
	require.Len(t, analysis.Present, 1)
	assert.Equal(t, "search", analysis.Present[0].Name)
	assert.Equal(t, 75.0, analysis.Present[0].MarketAdoption)
	assert.Equal(t, "search", analysis.Present[0].MatchedAgainst)

	require.Len(t, analysis.Missing, 3)
	byName := make(map[string]models.FeatureGap)
	for _, g := range analysis.Missing {
		byName[g.Name] = g
	}
	// 100% adoption is critical, 50% an opportunity, 25% nice to have.
	assert.Equal(t, models.GapCritical, byName["payments"].Priority)
	assert.Equal(t, models.GapOpportunity, byName["audit logging"].Priority)
	assert.Equal(t, models.GapNiceToHave, byName["dark mode"].Priority)

	s := analysis.Summary
	assert.Equal(t, 4, s.TotalMarketFeatures)
	assert.Equal(t, 1, s.PresentCount)
	assert.Equal(t, 3, s.MissingCount)
	assert.Equal(t, 1, s.CriticalCount)
	assert.Equal(t, 1, s.OpportunityCount)
	assert.Equal(t, 1, s.NiceToHaveCount)
	// (3*1 + 1) / 4 * 100
	assert.Equal(t, 100.0, s.GapScore)
	assert.Equal(t, models.ReadinessNeedsImprovement, s.Readiness)
}

func TestAnalyzeThresholdBoundary(t *testing.T) {
	// One feature in 7 of 10 leaders sits exactly at the default
	// threshold and must classify as critical.
	var leaders []models.MarketLeader
	for i := 0; i < 7; i++ {
		leaders = append(leaders, leaderWith("L", "fraud detection"))
	}
	for i := 0; i < 3; i++ {
		leaders = append(leaders, leaderWith("L", "dark mode"))
	}

	analysis := NewGapAnalyzer().Analyze("fintech", leaders, nil)

	byName := make(map[string]models.FeatureGap)
	for _, g := range analysis.Missing {
		byName[g.Name] = g
	}
	assert.Equal(t, 70.0, byName["fraud detection"].MarketAdoption)
	assert.Equal(t, models.GapCritical, byName["fraud detection"].Priority)
}

func TestAnalyzeCustomThreshold(t *testing.T) {
	leaders := []models.MarketLeader{
		leaderWith("A", "payments"),
		leaderWith("B", "payments"),
		leaderWith("C", "payments"),
		leaderWith("D", "dark mode"),
	}

	strict := NewGapAnalyzer(WithPriorityThreshold(90)).Analyze("saas", leaders, nil)

	for _, g := range strict.Missing {
		if g.Name == "payments" {
			assert.Equal(t, models.GapOpportunity, g.Priority) // 75% < 90
		}
	}
}

func TestAnalyzeFuzzyMatchMarksPresent(t *testing.T) {
	leaders := []models.MarketLeader{
		leaderWith("A", "user authentication"),
	}

	analysis := NewGapAnalyzer().Analyze("saas", leaders, []string{"User_Authentication"})

	require.Len(t, analysis.Present, 1)
	assert.Equal(t, "User_Authentication", analysis.Present[0].MatchedAgainst)
	assert.Empty(t, analysis.Missing)
	assert.Equal(t, 0.0, analysis.Summary.GapScore)
	assert.Equal(t, models.ReadinessExcellent, analysis.Summary.Readiness)
}

func TestAnalyzeNoLeaders(t *testing.T) {
	analysis := NewGapAnalyzer().Analyze("saas", nil, []string{"anything"})

	assert.Empty(t, analysis.Present)
	assert.Empty(t, analysis.Missing)
	assert.Equal(t, 0.0, analysis.Summary.GapScore)
}

func TestReadinessBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Readiness
	}{
		{0, models.ReadinessExcellent},
		{10, models.ReadinessExcellent},
		{10.1, models.ReadinessGood},
		{25, models.ReadinessGood},
		{40, models.ReadinessFair},
		{50, models.ReadinessFair},
		{50.1, models.ReadinessNeedsImprovement},
		{90, models.ReadinessNeedsImprovement},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.ReadinessFor(tt.score), "score %v", tt.score)
	}
}
