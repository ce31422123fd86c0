package models

// MarketLeader is a curated static profile of a competitor product.
// Seed data only; read-only at runtime.
type MarketLeader struct {
	Name           string   `json:"name" toon:"name"`
	Valuation      float64  `json:"valuation" toon:"valuation"` // billions USD
	FoundedYear    int      `json:"founded_year" toon:"founded_year"`
	Employees      int      `json:"employees" toon:"employees"`
	Users          int64    `json:"users" toon:"users"`
	MarketSegments []string `json:"market_segments" toon:"market_segments"`
	PricingModel   string   `json:"pricing_model" toon:"pricing_model"`
	KeyFeatures    []string `json:"key_features" toon:"key_features"`
	Technologies   []string `json:"technologies" toon:"technologies"`
}

// MarketStats summarizes the leaders of one category.
type MarketStats struct {
	LeaderCount      int     `json:"leader_count" toon:"leader_count"`
	MeanValuation    float64 `json:"mean_valuation" toon:"mean_valuation"`
	MaxValuation     float64 `json:"max_valuation" toon:"max_valuation"`
	StdDevValuation  float64 `json:"stddev_valuation" toon:"stddev_valuation"`
	TotalUsers       int64   `json:"total_users" toon:"total_users"`
	MeanEmployees    float64 `json:"mean_employees" toon:"mean_employees"`
	DistinctSegments int     `json:"distinct_segments" toon:"distinct_segments"`
}

// LeaderAnalysis is the result of a market-leader lookup.
type LeaderAnalysis struct {
	Category string         `json:"category" toon:"category"`
	Leaders  []MarketLeader `json:"leaders" toon:"leaders"`
	Stats    MarketStats    `json:"stats" toon:"stats"`
}
