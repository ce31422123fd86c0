package advisor

import (
	"sort"

	"github.com/vantagelabs/vantage/pkg/models"
)

// Prioritizer ranks candidate features by weighted priority score.
type Prioritizer struct {
	focus               string
	budget              models.Budget
	maxSuggestions      int
	similarityThreshold float64
}

// PrioritizerOption configures the Prioritizer.
type PrioritizerOption func(*Prioritizer)

// WithFocus restricts the focus bonus to one feature category. The
// zero value "all" applies no bonus.
func WithFocus(focus string) PrioritizerOption {
	return func(p *Prioritizer) {
		if focus != "" {
			p.focus = focus
		}
	}
}

// WithBudget sets the caller's implementation budget.
func WithBudget(budget models.Budget) PrioritizerOption {
	return func(p *Prioritizer) {
		if budget != "" {
			p.budget = budget
		}
	}
}

// WithMaxSuggestions caps how many features Suggest returns.
func WithMaxSuggestions(n int) PrioritizerOption {
	return func(p *Prioritizer) {
		if n > 0 {
			p.maxSuggestions = n
		}
	}
}

// WithSimilarityThreshold overrides the fuzzy-match cutoff used to
// filter out features the caller already has.
func WithSimilarityThreshold(threshold float64) PrioritizerOption {
	return func(p *Prioritizer) {
		if threshold > 0 {
			p.similarityThreshold = threshold
		}
	}
}

// NewPrioritizer creates a prioritizer with the given options.
func NewPrioritizer(opts ...PrioritizerOption) *Prioritizer {
	p := &Prioritizer{
		focus:               "all",
		budget:              models.BudgetMedium,
		maxSuggestions:      5,
		similarityThreshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Score computes the full priority score of one candidate, including
// focus and budget modifiers.
func (p *Prioritizer) Score(f models.Feature) float64 {
	score := f.BaseScore()
	if p.focus != "all" && string(f.Category) == p.focus {
		score += models.FocusBonus
	}
	if p.budget == models.BudgetLow && (f.Effort == models.EffortHigh || f.Effort == models.EffortVeryHigh) {
		score -= models.LowBudgetPenalty
	}
	return score
}

// Suggest scores every candidate not already covered by the caller's
// current features and returns the top suggestions in descending score
// order. Candidates with equal scores keep their input order.
func (p *Prioritizer) Suggest(candidates []models.Feature, currentFeatures []string) *models.SuggestionAnalysis {
	scored := make([]models.ScoredFeature, 0, len(candidates))
	for _, f := range candidates {
		if _, have := HasFeature(currentFeatures, f.Name, p.similarityThreshold); have {
			continue
		}
		scored = append(scored, models.ScoredFeature{Feature: f, Score: p.Score(f)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	var maxScore float64
	if len(scored) > 0 {
		maxScore = scored[0].Score
	}

	candidateCount := len(scored)
	if len(scored) > p.maxSuggestions {
		scored = scored[:p.maxSuggestions]
	}

	return &models.SuggestionAnalysis{
		Suggestions: scored,
		Summary: models.SuggestionSummary{
			CandidateCount: candidateCount,
			ReturnedCount:  len(scored),
			Focus:          p.focus,
			Budget:         p.budget,
			MaxScore:       maxScore,
		},
	}
}
