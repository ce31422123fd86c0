package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagelabs/vantage/pkg/models"
)

func feature(name string, category models.FeatureCategory, effort models.EffortLevel) models.Feature {
	return models.Feature{
		Name:       name,
		Effort:     effort,
		Impact:     models.ImpactHigh,
		Importance: models.ImportanceHigh,
		Category:   category,
	}
}

func TestScoreWeightedSum(t *testing.T) {
	p := NewPrioritizer()
	f := models.Feature{
		Effort:     models.EffortLow,          // 30
		Impact:     models.ImpactVeryHigh,     // 50
		Importance: models.ImportanceCritical, // 100
		Category:   models.CategoryEssential,  // 50
	}
	assert.Equal(t, 230.0, p.Score(f))
}

func TestScoreUnknownEnumsContributeZero(t *testing.T) {
	p := NewPrioritizer()
	f := models.Feature{
		Effort:     "gigantic",
		Impact:     "transformative",
		Importance: "existential",
		Category:   "moonshot",
	}
	assert.Equal(t, 0.0, p.Score(f))

	partial := models.Feature{
		Effort:     "gigantic",
		Impact:     models.ImpactHigh,    // 40
		Importance: models.ImportanceLow, // 25
		Category:   "moonshot",
	}
	assert.Equal(t, 65.0, p.Score(partial))
}

func TestScoreFocusBonusIsExactlyTwentyFive(t *testing.T) {
	focused := NewPrioritizer(WithFocus("innovation"))

	matching := feature("AI Assistant", models.CategoryInnovation, models.EffortMedium)
	other := feature("AI Assistant", models.CategoryEmergingTrends, models.EffortMedium)

	categoryDelta := 15.0 - 10.0 // innovation vs emerging_trends base weights
	assert.Equal(t, 25.0+categoryDelta, focused.Score(matching)-focused.Score(other))

	unfocused := NewPrioritizer(WithFocus("all"))
	assert.Equal(t, focused.Score(matching)-25.0, unfocused.Score(matching))
}

func TestScoreLowBudgetPenalty(t *testing.T) {
	low := NewPrioritizer(WithBudget(models.BudgetLow))
	medium := NewPrioritizer(WithBudget(models.BudgetMedium))

	heavy := feature("Mobile App", models.CategoryUserExperience, models.EffortVeryHigh)
	light := feature("Dark Mode", models.CategoryUserExperience, models.EffortLow)

	assert.Equal(t, medium.Score(heavy)-20.0, low.Score(heavy))
	assert.Equal(t, medium.Score(light), low.Score(light))
}

func TestSuggestOrderingAndTruncation(t *testing.T) {
	candidates := []models.Feature{
		feature("Dark Mode", models.CategoryUserExperience, models.EffortLow),
		feature("Automated Backups", models.CategoryEssential, models.EffortHigh),
		feature("Public API", models.CategoryCompetitive, models.EffortHigh),
		feature("AI Assistant", models.CategoryInnovation, models.EffortVeryHigh),
	}

	p := NewPrioritizer(WithMaxSuggestions(2))
	result := p.Suggest(candidates, nil)

	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, 4, result.Summary.CandidateCount)
	assert.Equal(t, 2, result.Summary.ReturnedCount)
	assert.GreaterOrEqual(t, result.Suggestions[0].Score, result.Suggestions[1].Score)
	assert.Equal(t, result.Suggestions[0].Score, result.Summary.MaxScore)
}

func TestSuggestStableOrderForEqualScores(t *testing.T) {
	// Identical attributes, so identical scores; input order must hold.
	candidates := []models.Feature{
		feature("Alpha", models.CategoryCompetitive, models.EffortMedium),
		feature("Beta", models.CategoryCompetitive, models.EffortMedium),
		feature("Gamma", models.CategoryCompetitive, models.EffortMedium),
	}

	result := NewPrioritizer().Suggest(candidates, nil)

	require.Len(t, result.Suggestions, 3)
	assert.Equal(t, "Alpha", result.Suggestions[0].Name)
	assert.Equal(t, "Beta", result.Suggestions[1].Name)
	assert.Equal(t, "Gamma", result.Suggestions[2].Name)
}

func TestSuggestFiltersExistingFeatures(t *testing.T) {
	candidates := []models.Feature{
		feature("User Authentication", models.CategoryEssential, models.EffortMedium),
		feature("Public API", models.CategoryCompetitive, models.EffortHigh),
	}

	result := NewPrioritizer().Suggest(candidates, []string{"user_authentication"})

	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Public API", result.Suggestions[0].Name)
	assert.Equal(t, 1, result.Summary.CandidateCount)
}

func TestSuggestEmptyCandidates(t *testing.T) {
	result := NewPrioritizer().Suggest(nil, []string{"anything"})

	assert.Empty(t, result.Suggestions)
	assert.Equal(t, 0, result.Summary.CandidateCount)
	assert.Equal(t, 0.0, result.Summary.MaxScore)
}

func TestPrioritizerOptionDefaults(t *testing.T) {
	p := NewPrioritizer(WithFocus(""), WithBudget(""), WithMaxSuggestions(0), WithSimilarityThreshold(0))

	assert.Equal(t, "all", p.focus)
	assert.Equal(t, models.BudgetMedium, p.budget)
	assert.Equal(t, 5, p.maxSuggestions)
	assert.Equal(t, DefaultSimilarityThreshold, p.similarityThreshold)
}
