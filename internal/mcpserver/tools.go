package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/vantagelabs/vantage/internal/advisor"
	"github.com/vantagelabs/vantage/internal/market"
	"github.com/vantagelabs/vantage/internal/output"
	"github.com/vantagelabs/vantage/internal/plan"
	"github.com/vantagelabs/vantage/pkg/models"
)

// Common input structures for tools

// BaseInput carries the options shared by all tools.
type BaseInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// SuggestFeaturesInput configures feature prioritization.
type SuggestFeaturesInput struct {
	BaseInput
	CurrentFeatures []string `json:"current_features,omitempty" jsonschema:"Features the product already has. Matching candidates are filtered out."`
	Focus           string   `json:"focus,omitempty" jsonschema:"Feature category to boost: essential, competitive, user_experience, revenue_growth, innovation, emerging_trends, or all. Default all."`
	Budget          string   `json:"budget,omitempty" jsonschema:"Implementation budget: low, medium, high, or unlimited. Low budgets penalize high-effort features. Default medium."`
	MaxSuggestions  int      `json:"max_suggestions,omitempty" jsonschema:"Maximum number of suggestions to return. Default 5."`
}

// CompareFeaturesInput configures competitive gap analysis.
type CompareFeaturesInput struct {
	BaseInput
	Features []string `json:"features" jsonschema:"Features the product currently has. Required."`
	Category string   `json:"category,omitempty" jsonschema:"Market category to compare against: saas, ecommerce, fintech, social, marketplace, or healthtech. Default saas."`
}

// GeneratePlanInput configures development plan generation.
type GeneratePlanInput struct {
	BaseInput
	Features   []string `json:"features" jsonschema:"Features to plan development for. Required."`
	Complexity string   `json:"complexity,omitempty" jsonschema:"Plan complexity: simple, medium, complex, or enterprise. Default medium."`
	Focus      string   `json:"focus,omitempty" jsonschema:"Strategic focus recorded in the plan overview."`
	OutputDir  string   `json:"output_dir,omitempty" jsonschema:"Directory for the markdown plan file. Defaults to the configured plans directory."`
	WriteFile  *bool    `json:"write_file,omitempty" jsonschema:"Write the rendered plan to disk. Default true."`
}

// MarketLeadersInput selects a market category.
type MarketLeadersInput struct {
	BaseInput
	Category string `json:"category,omitempty" jsonschema:"Market category: saas, ecommerce, fintech, social, marketplace, or healthtech. Default saas."`
	Top      int    `json:"top,omitempty" jsonschema:"Return only the first N leaders. Category stats still cover all leaders."`
}

// FeatureCatalogInput selects a feature pool.
type FeatureCatalogInput struct {
	BaseInput
	Category string `json:"category,omitempty" jsonschema:"Feature category pool to list, or all for every pool. Default all."`
}

// MarketTrendsInput configures trend analysis.
type MarketTrendsInput struct {
	BaseInput
	Category string `json:"category,omitempty" jsonschema:"Market category whose leader technology adoption is analyzed. Default saas."`
}

// ReadinessReportInput configures the composite readiness report.
type ReadinessReportInput struct {
	BaseInput
	Category        string   `json:"category,omitempty" jsonschema:"Market category to analyze. Default saas."`
	CurrentFeatures []string `json:"current_features,omitempty" jsonschema:"Features the product already has."`
	Focus           string   `json:"focus,omitempty" jsonschema:"Feature category to boost in suggestions. Default all."`
	Budget          string   `json:"budget,omitempty" jsonschema:"Implementation budget for suggestions. Default medium."`
	MaxSuggestions  int      `json:"max_suggestions,omitempty" jsonschema:"Maximum suggestions in the report. Default 5."`
}

// Helper functions

func getFormat(input BaseInput) output.Format {
	switch input.Format {
	case "json":
		return output.FormatJSON
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatTOON
	}
}

func (s *Server) category(requested string) string {
	if requested != "" {
		return requested
	}
	return s.cfg.Defaults.Category
}

func formatOutput(data any, format output.Format) (string, error) {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return "", err
	}
	if format == output.FormatMarkdown {
		return "```\n" + string(out) + "\n```", nil
	}
	return string(out), nil
}

func (s *Server) toolResult(tool string, data any, format output.Format) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	s.log.Debug("tool response",
		"tool", tool,
		"tokens", output.FormatTokenCount(output.EstimateTokens(text)))
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

// Tool handlers

func (s *Server) handleSuggestFeatures(ctx context.Context, req *mcp.CallToolRequest, input SuggestFeaturesInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	focus := input.Focus
	if focus == "" {
		focus = s.cfg.Defaults.Focus
	}
	budget := input.Budget
	if budget == "" {
		budget = s.cfg.Defaults.Budget
	}
	maxSuggestions := input.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = s.cfg.Defaults.MaxSuggestions
	}

	prioritizer := advisor.NewPrioritizer(
		advisor.WithFocus(focus),
		advisor.WithBudget(models.Budget(budget)),
		advisor.WithMaxSuggestions(maxSuggestions),
		advisor.WithSimilarityThreshold(s.cfg.Thresholds.Similarity),
	)
	result := prioritizer.Suggest(market.AllFeatures(), input.CurrentFeatures)

	return s.toolResult("suggest_features", result, format)
}

func (s *Server) handleCompareFeatures(ctx context.Context, req *mcp.CallToolRequest, input CompareFeaturesInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	if len(input.Features) == 0 {
		return toolError("features is required")
	}

	category := s.category(input.Category)
	analysis, err := s.catalog.LeadersFor(category)
	if err != nil {
		return toolError(err.Error())
	}

	analyzer := advisor.NewGapAnalyzer(
		advisor.WithPriorityThreshold(s.cfg.Thresholds.PriorityThreshold),
		advisor.WithGapSimilarityThreshold(s.cfg.Thresholds.Similarity),
	)
	result := analyzer.Analyze(category, analysis.Leaders, input.Features)

	return s.toolResult("compare_features", result, format)
}

func (s *Server) handleGeneratePlan(ctx context.Context, req *mcp.CallToolRequest, input GeneratePlanInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	if len(input.Features) == 0 {
		return toolError("features is required")
	}

	builder := plan.NewBuilder(
		plan.WithComplexity(models.PlanComplexity(input.Complexity)),
		plan.WithPlanFocus(input.Focus),
	)
	p := builder.Build(input.Features)

	writeFile := s.cfg.Plans.WriteFile
	if input.WriteFile != nil {
		writeFile = *input.WriteFile
	}

	var path string
	if writeFile {
		dir := input.OutputDir
		if dir == "" {
			dir = s.cfg.Plans.Dir
		}
		written, err := plan.Write(p, dir)
		if err != nil {
			return toolError(err.Error())
		}
		path = written
		s.log.Debug("plan written", "path", path)
	}

	result := struct {
		Plan *models.DevelopmentPlan `json:"plan" toon:"plan"`
		Path string                  `json:"path,omitempty" toon:"path,omitempty"`
	}{p, path}

	return s.toolResult("generate_development_plan", result, format)
}

func (s *Server) handleMarketLeaders(ctx context.Context, req *mcp.CallToolRequest, input MarketLeadersInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	analysis, err := s.catalog.LeadersFor(s.category(input.Category))
	if err != nil {
		return toolError(err.Error())
	}

	if input.Top > 0 && input.Top < len(analysis.Leaders) {
		analysis.Leaders = analysis.Leaders[:input.Top]
	}

	return s.toolResult("get_market_leaders", analysis, format)
}

func (s *Server) handleFeatureCatalog(ctx context.Context, req *mcp.CallToolRequest, input FeatureCatalogInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	category := strings.TrimSpace(input.Category)
	var features []models.Feature
	if category == "" || category == "all" {
		features = market.AllFeatures()
	} else {
		features = market.Pool(models.FeatureCategory(category))
		if len(features) == 0 {
			return toolError("unknown feature category " + category)
		}
	}

	result := struct {
		Features []models.Feature `json:"features" toon:"features"`
		Count    int              `json:"count" toon:"count"`
	}{features, len(features)}

	return s.toolResult("get_feature_catalog", result, format)
}

func (s *Server) handleMarketTrends(ctx context.Context, req *mcp.CallToolRequest, input MarketTrendsInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	category := s.category(input.Category)
	analysis, err := s.catalog.LeadersFor(category)
	if err != nil {
		return toolError(err.Error())
	}

	result := advisor.AnalyzeTrends(category, analysis.Leaders, market.TrendPool())

	return s.toolResult("analyze_market_trends", result, format)
}

func (s *Server) handleReadinessReport(ctx context.Context, req *mcp.CallToolRequest, input ReadinessReportInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.BaseInput)

	category := s.category(input.Category)
	analysis, err := s.catalog.LeadersFor(category)
	if err != nil {
		return toolError(err.Error())
	}

	focus := input.Focus
	if focus == "" {
		focus = s.cfg.Defaults.Focus
	}
	budget := input.Budget
	if budget == "" {
		budget = s.cfg.Defaults.Budget
	}
	maxSuggestions := input.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = s.cfg.Defaults.MaxSuggestions
	}

	reporter := advisor.NewReporter(
		advisor.NewPrioritizer(
			advisor.WithFocus(focus),
			advisor.WithBudget(models.Budget(budget)),
			advisor.WithMaxSuggestions(maxSuggestions),
			advisor.WithSimilarityThreshold(s.cfg.Thresholds.Similarity),
		),
		advisor.NewGapAnalyzer(
			advisor.WithPriorityThreshold(s.cfg.Thresholds.PriorityThreshold),
			advisor.WithGapSimilarityThreshold(s.cfg.Thresholds.Similarity),
		),
	)
	report := reporter.Report(category, analysis.Leaders, market.AllFeatures(), market.TrendPool(), input.CurrentFeatures)

	return s.toolResult("market_readiness_report", report, format)
}
