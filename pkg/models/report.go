package models

import "time"

// ReadinessReport is the composite result of running gap, suggestion,
// and trend analysis together for one category.
type ReadinessReport struct {
	Category    string              `json:"category" toon:"category"`
	GeneratedAt time.Time           `json:"generated_at" toon:"generated_at"`
	Gaps        *GapAnalysis        `json:"gaps,omitempty" toon:"gaps,omitempty"`
	Suggestions *SuggestionAnalysis `json:"suggestions,omitempty" toon:"suggestions,omitempty"`
	Trends      *TrendAnalysis      `json:"trends,omitempty" toon:"trends,omitempty"`
	Verdict     Readiness           `json:"verdict" toon:"verdict"`
}
