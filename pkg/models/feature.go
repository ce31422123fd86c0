package models

// EffortLevel is the estimated implementation cost of a feature.
type EffortLevel string

const (
	EffortLow      EffortLevel = "low"
	EffortMedium   EffortLevel = "medium"
	EffortHigh     EffortLevel = "high"
	EffortVeryHigh EffortLevel = "very_high"
)

// Impact is the expected product impact of shipping a feature.
type Impact string

const (
	ImpactLow        Impact = "low"
	ImpactMedium     Impact = "medium"
	ImpactMediumHigh Impact = "medium-high"
	ImpactHigh       Impact = "high"
	ImpactVeryHigh   Impact = "very_high"
)

// Importance is how essential a feature is to a viable product.
type Importance string

const (
	ImportanceLow      Importance = "low"
	ImportanceMedium   Importance = "medium"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// FeatureCategory groups features by strategic role.
type FeatureCategory string

const (
	CategoryEssential      FeatureCategory = "essential"
	CategoryCompetitive    FeatureCategory = "competitive"
	CategoryUserExperience FeatureCategory = "user_experience"
	CategoryRevenueGrowth  FeatureCategory = "revenue_growth"
	CategoryInnovation     FeatureCategory = "innovation"
	CategoryEmergingTrends FeatureCategory = "emerging_trends"
)

// Budget constrains how much implementation effort the caller can absorb.
type Budget string

const (
	BudgetLow       Budget = "low"
	BudgetMedium    Budget = "medium"
	BudgetHigh      Budget = "high"
	BudgetUnlimited Budget = "unlimited"
)

// Feature is a candidate product feature drawn from a static pool.
// Records are constructed fresh per request and never persisted.
type Feature struct {
	Name        string          `json:"name" toon:"name"`
	Description string          `json:"description" toon:"description"`
	Effort      EffortLevel     `json:"effort_level" toon:"effort_level"`
	Impact      Impact          `json:"impact" toon:"impact"`
	Importance  Importance      `json:"importance" toon:"importance"`
	Category    FeatureCategory `json:"category" toon:"category"`
}

// Priority weight tables. Unknown enum values deliberately fall through to
// zero: malformed inputs degrade rather than error.
var importanceWeights = map[Importance]float64{
	ImportanceCritical: 100,
	ImportanceHigh:     75,
	ImportanceMedium:   50,
	ImportanceLow:      25,
}

var impactWeights = map[Impact]float64{
	ImpactVeryHigh:   50,
	ImpactHigh:       40,
	ImpactMediumHigh: 35,
	ImpactMedium:     30,
	ImpactLow:        10,
}

// Effort weights are inverted: cheap features score higher.
var effortWeights = map[EffortLevel]float64{
	EffortLow:      30,
	EffortMedium:   20,
	EffortHigh:     10,
	EffortVeryHigh: 5,
}

var categoryWeights = map[FeatureCategory]float64{
	CategoryEssential:      50,
	CategoryCompetitive:    30,
	CategoryUserExperience: 25,
	CategoryRevenueGrowth:  35,
	CategoryInnovation:     15,
	CategoryEmergingTrends: 10,
}

const (
	// FocusBonus is added when a feature's category matches the caller's focus.
	FocusBonus = 25.0
	// LowBudgetPenalty is subtracted from high-effort features on a low budget.
	LowBudgetPenalty = 20.0
)

// BaseScore computes the weighted-sum priority of a feature before
// focus and budget modifiers.
func (f Feature) BaseScore() float64 {
	return importanceWeights[f.Importance] +
		impactWeights[f.Impact] +
		effortWeights[f.Effort] +
		categoryWeights[f.Category]
}

// ScoredFeature pairs a feature with its computed priority score.
type ScoredFeature struct {
	Feature
	Score float64 `json:"priority_score" toon:"priority_score"`
}

// SuggestionSummary aggregates a prioritization run.
type SuggestionSummary struct {
	CandidateCount int     `json:"candidate_count" toon:"candidate_count"`
	ReturnedCount  int     `json:"returned_count" toon:"returned_count"`
	Focus          string  `json:"focus" toon:"focus"`
	Budget         Budget  `json:"budget" toon:"budget"`
	MaxScore       float64 `json:"max_score" toon:"max_score"`
}

// SuggestionAnalysis is the result of a feature prioritization run.
type SuggestionAnalysis struct {
	Suggestions []ScoredFeature   `json:"suggestions" toon:"suggestions"`
	Summary     SuggestionSummary `json:"summary" toon:"summary"`
}
