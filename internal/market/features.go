package market

import "github.com/vantagelabs/vantage/pkg/models"

// featurePools holds the candidate features suggestion runs draw from,
// keyed by feature category.
var featurePools = map[models.FeatureCategory][]models.Feature{
	models.CategoryEssential: {
		{
			Name:        "User Authentication",
			Description: "Secure signup, login, and session management with MFA support",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactVeryHigh,
			Importance:  models.ImportanceCritical,
			Category:    models.CategoryEssential,
		},
		{
			Name:        "Role Based Access Control",
			Description: "Granular permissions so teams can safely share one workspace",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceCritical,
			Category:    models.CategoryEssential,
		},
		{
			Name:        "Audit Logging",
			Description: "Immutable trail of user and system actions for compliance reviews",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryEssential,
		},
		{
			Name:        "Data Export",
			Description: "Self-service export of account data in CSV and JSON",
			Effort:      models.EffortLow,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryEssential,
		},
		{
			Name:        "Automated Backups",
			Description: "Scheduled encrypted backups with point-in-time restore",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceCritical,
			Category:    models.CategoryEssential,
		},
	},
	models.CategoryCompetitive: {
		{
			Name:        "Third Party Integrations",
			Description: "Native connectors for the tools customers already run",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryCompetitive,
		},
		{
			Name:        "Public API",
			Description: "Documented REST API with keys, rate limits, and webhooks",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactVeryHigh,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryCompetitive,
		},
		{
			Name:        "Advanced Search",
			Description: "Full-text search with filters, facets, and saved queries",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryCompetitive,
		},
		{
			Name:        "Custom Workflows",
			Description: "User-defined automation rules triggered by product events",
			Effort:      models.EffortVeryHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryCompetitive,
		},
		{
			Name:        "White Labeling",
			Description: "Custom domains, logos, and theming for reseller accounts",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryCompetitive,
		},
	},
	models.CategoryUserExperience: {
		{
			Name:        "Mobile App",
			Description: "Native iOS and Android clients with offline support",
			Effort:      models.EffortVeryHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryUserExperience,
		},
		{
			Name:        "Dark Mode",
			Description: "System-aware light and dark themes across all screens",
			Effort:      models.EffortLow,
			Impact:      models.ImpactLow,
			Importance:  models.ImportanceLow,
			Category:    models.CategoryUserExperience,
		},
		{
			Name:        "Onboarding Checklist",
			Description: "Guided first-run checklist that walks new users to first value",
			Effort:      models.EffortLow,
			Impact:      models.ImpactMediumHigh,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryUserExperience,
		},
		{
			Name:        "Keyboard Shortcuts",
			Description: "Power-user shortcuts with a discoverable command palette",
			Effort:      models.EffortLow,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceLow,
			Category:    models.CategoryUserExperience,
		},
		{
			Name:        "Accessibility Compliance",
			Description: "WCAG 2.1 AA support including screen readers and contrast modes",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceHigh,
			Category:    models.CategoryUserExperience,
		},
	},
	models.CategoryRevenueGrowth: {
		{
			Name:        "Subscription Billing",
			Description: "Tiered plans, proration, and dunning handled in-product",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactVeryHigh,
			Importance:  models.ImportanceCritical,
			Category:    models.CategoryRevenueGrowth,
		},
		{
			Name:        "Usage Based Pricing",
			Description: "Metered billing tied to actual consumption",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryRevenueGrowth,
		},
		{
			Name:        "Referral Program",
			Description: "In-product referral links with credit rewards for both sides",
			Effort:      models.EffortMedium,
			Impact:      models.ImpactMediumHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryRevenueGrowth,
		},
		{
			Name:        "Upsell Prompts",
			Description: "Contextual upgrade prompts when users hit plan limits",
			Effort:      models.EffortLow,
			Impact:      models.ImpactMediumHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryRevenueGrowth,
		},
		{
			Name:        "Annual Plan Discounts",
			Description: "Discounted yearly billing to improve retention and cash flow",
			Effort:      models.EffortLow,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryRevenueGrowth,
		},
	},
	models.CategoryInnovation: {
		{
			Name:        "AI Assistant",
			Description: "Conversational assistant that answers questions about user data",
			Effort:      models.EffortVeryHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryInnovation,
		},
		{
			Name:        "Predictive Analytics",
			Description: "Forecasting models surfaced directly in dashboards",
			Effort:      models.EffortVeryHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryInnovation,
		},
		{
			Name:        "Smart Recommendations",
			Description: "Behavior-driven suggestions for next actions and content",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactMediumHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryInnovation,
		},
		{
			Name:        "Natural Language Queries",
			Description: "Plain-English questions translated into report filters",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceLow,
			Category:    models.CategoryInnovation,
		},
	},
	models.CategoryEmergingTrends: {
		{
			Name:        "Real Time Collaboration",
			Description: "Multiplayer editing with presence and conflict-free merges",
			Effort:      models.EffortVeryHigh,
			Impact:      models.ImpactHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryEmergingTrends,
		},
		{
			Name:        "Voice Interface",
			Description: "Hands-free voice commands for core workflows",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactLow,
			Importance:  models.ImportanceLow,
			Category:    models.CategoryEmergingTrends,
		},
		{
			Name:        "Edge Deployment",
			Description: "Regional edge execution to cut latency for global teams",
			Effort:      models.EffortVeryHigh,
			Impact:      models.ImpactMedium,
			Importance:  models.ImportanceLow,
			Category:    models.CategoryEmergingTrends,
		},
		{
			Name:        "Workflow Marketplace",
			Description: "Community marketplace for sharing templates and automations",
			Effort:      models.EffortHigh,
			Impact:      models.ImpactMediumHigh,
			Importance:  models.ImportanceMedium,
			Category:    models.CategoryEmergingTrends,
		},
	},
}

// poolOrder fixes the iteration order over featurePools so candidate
// lists are deterministic.
var poolOrder = []models.FeatureCategory{
	models.CategoryEssential,
	models.CategoryCompetitive,
	models.CategoryUserExperience,
	models.CategoryRevenueGrowth,
	models.CategoryInnovation,
	models.CategoryEmergingTrends,
}
