package models

// TechnologyAdoption counts how many leaders in a category build on a
// given technology.
type TechnologyAdoption struct {
	Technology string  `json:"technology" toon:"technology"`
	Leaders    int     `json:"leaders" toon:"leaders"`
	Adoption   float64 `json:"adoption" toon:"adoption"` // percent
}

// TrendSummary aggregates a trend analysis run.
type TrendSummary struct {
	TrendCount       int     `json:"trend_count" toon:"trend_count"`
	TechnologyCount  int     `json:"technology_count" toon:"technology_count"`
	MeanTechAdoption float64 `json:"mean_tech_adoption" toon:"mean_tech_adoption"`
}

// TrendAnalysis is the result of analyzing emerging trends and
// technology adoption within one market category.
type TrendAnalysis struct {
	Category     string               `json:"category" toon:"category"`
	Trends       []ScoredFeature      `json:"trends" toon:"trends"`
	Technologies []TechnologyAdoption `json:"technologies" toon:"technologies"`
	Summary      TrendSummary         `json:"summary" toon:"summary"`
}
