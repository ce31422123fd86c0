package models

// GapPriority classifies a missing market feature by how widely the
// market has adopted it.
type GapPriority string

const (
	GapCritical    GapPriority = "critical"
	GapOpportunity GapPriority = "opportunity"
	GapNiceToHave  GapPriority = "nice_to_have"
)

// Readiness buckets the overall gap score.
type Readiness string

const (
	ReadinessExcellent        Readiness = "excellent"
	ReadinessGood             Readiness = "good"
	ReadinessFair             Readiness = "fair"
	ReadinessNeedsImprovement Readiness = "needs_improvement"
)

// FeatureMatch is a market feature the caller already covers.
type FeatureMatch struct {
	Name           string  `json:"name" toon:"name"`
	MarketAdoption float64 `json:"market_adoption" toon:"market_adoption"` // percent
	MatchedAgainst string  `json:"matched_against" toon:"matched_against"`
}

// FeatureGap is a market feature absent from the caller's product.
type FeatureGap struct {
	Name           string      `json:"name" toon:"name"`
	MarketAdoption float64     `json:"market_adoption" toon:"market_adoption"` // percent
	Priority       GapPriority `json:"priority" toon:"priority"`
}

// GapSummary aggregates a gap analysis run.
type GapSummary struct {
	TotalMarketFeatures int       `json:"total_market_features" toon:"total_market_features"`
	PresentCount        int       `json:"present_count" toon:"present_count"`
	MissingCount        int       `json:"missing_count" toon:"missing_count"`
	CriticalCount       int       `json:"critical_count" toon:"critical_count"`
	OpportunityCount    int       `json:"opportunity_count" toon:"opportunity_count"`
	NiceToHaveCount     int       `json:"nice_to_have_count" toon:"nice_to_have_count"`
	GapScore            float64   `json:"gap_score" toon:"gap_score"`
	Readiness           Readiness `json:"readiness" toon:"readiness"`
}

// GapAnalysis is the result of comparing a feature list against the
// market-leader feature-frequency table of one category.
type GapAnalysis struct {
	Category string         `json:"category" toon:"category"`
	Present  []FeatureMatch `json:"present" toon:"present"`
	Missing  []FeatureGap   `json:"missing" toon:"missing"`
	Summary  GapSummary     `json:"summary" toon:"summary"`
}

// CalculateGapScore weights critical gaps three times as heavily as
// opportunity gaps, normalized over the full market feature set.
func CalculateGapScore(critical, opportunity, totalFeatures int) float64 {
	if totalFeatures == 0 {
		return 0
	}
	return float64(3*critical+opportunity) / float64(totalFeatures) * 100
}

// ReadinessFor buckets a gap score into a market-readiness verdict.
func ReadinessFor(gapScore float64) Readiness {
	switch {
	case gapScore <= 10:
		return ReadinessExcellent
	case gapScore <= 25:
		return ReadinessGood
	case gapScore <= 50:
		return ReadinessFair
	default:
		return ReadinessNeedsImprovement
	}
}
