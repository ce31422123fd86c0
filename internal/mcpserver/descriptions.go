package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// how to interpret results, and key thresholds.

func describeSuggestFeatures() string {
	return `Ranks candidate product features by a weighted priority score and returns the top suggestions.

USE WHEN:
- Deciding what to build next for a product
- Prioritizing a backlog against importance, impact, and effort
- Exploring which features fit a limited budget
- Focusing a roadmap on one strategic category

INTERPRETING RESULTS:
- priority_score combines importance (up to 100), impact (up to 50), inverse effort (up to 30), and category weight (up to 50)
- A focus other than "all" adds a flat +25 to features in that category
- A low budget subtracts 20 from high and very_high effort features
- Scores above 200 are strong candidates; below 100 are speculative
- Features matching current_features are excluded before ranking

METRICS RETURNED:
- suggestions: ranked features with attributes and priority_score
- summary: candidate_count, returned_count, focus, budget, max_score`
}

func describeCompareFeatures() string {
	return `Compares a product's feature list against what market leaders in a category ship, and classifies each gap.

USE WHEN:
- Assessing competitive position in a market category
- Finding the most widely adopted features a product is missing
- Quantifying market readiness before a launch
- Justifying roadmap priorities with adoption data

INTERPRETING RESULTS:
- market_adoption is the percentage of category leaders shipping a feature
- Missing features with adoption >= 70% are critical gaps
- Adoption between 40% and 70% is an opportunity; below 40% nice_to_have
- gap_score weights critical gaps 3x: (3*critical + opportunity) / total * 100
- readiness: <=10 excellent, <=25 good, <=50 fair, else needs_improvement
- Feature names match fuzzily, so "user-auth" style variants still count as present

METRICS RETURNED:
- present: matched market features with adoption and the matching input feature
- missing: gaps with adoption and priority classification
- summary: counts per class, gap_score, readiness`
}

func describeGeneratePlan() string {
	return `Generates a phased development plan for a feature list and renders it as a markdown document.

USE WHEN:
- Turning a prioritized feature list into an actionable plan
- Estimating timeline and team size for a delivery
- Producing a plan document to hand to a development team
- Creating per-feature task checklists with AI implementation instructions

INTERPRETING RESULTS:
- Phases run Foundation, Core Features (one task per feature), Testing & QA, Deployment
- Task effort and team composition scale with complexity (simple, medium, complex, enterprise)
- The timeline adds one core week per 5 task-days of feature work
- The markdown file lands in the configured plans directory; identical requests reuse the same filename
- Only the generated_at timestamp differs between identical runs

METRICS RETURNED:
- plan: overview, features, phases with numbered tasks and checklists, timeline, team, risks, metrics
- path: location of the written markdown file when write_file is enabled`
}

func describeMarketLeaders() string {
	return `Returns curated profiles of the leading companies in a market category with summary statistics.

USE WHEN:
- Researching the competitive landscape of a category
- Looking up which features and technologies leaders ship
- Sizing a market by valuation and user counts
- Feeding competitor data into a positioning discussion

INTERPRETING RESULTS:
- Valuations are in billions of USD; users and employees are absolute counts
- key_features and technologies are ordered as curated, most defining first
- top trims the leader list; stats always cover the whole category
- stats.stddev_valuation shows how concentrated the category is
- distinct_segments counts the unique market segments leaders cover

METRICS RETURNED:
- leaders: per-company profile (valuation, founded_year, employees, users, segments, pricing_model, key_features, technologies)
- stats: leader_count, mean/max/stddev valuation, total_users, mean_employees, distinct_segments`
}

func describeFeatureCatalog() string {
	return `Lists the candidate features the prioritizer draws from, optionally filtered to one category pool.

USE WHEN:
- Browsing what features the suggestion engine can propose
- Checking the attributes (importance, impact, effort) behind a suggestion
- Building a custom shortlist before running suggest_features

INTERPRETING RESULTS:
- Pools: essential, competitive, user_experience, revenue_growth, innovation, emerging_trends
- Attributes feed the priority score; see suggest_features for the weighting
- The catalog is static and identical across calls

METRICS RETURNED:
- features: name, description, effort_level, impact, importance, category
- count: number of features returned`
}

func describeMarketTrends() string {
	return `Analyzes emerging feature trends and the technologies adopted by leaders in a market category.

USE WHEN:
- Scouting where a market is heading
- Checking which technologies are table stakes among leaders
- Weighing an investment in an emerging capability

INTERPRETING RESULTS:
- trends are emerging-trend features ranked by base priority score, no focus or budget modifiers
- technologies list leader adoption; 100% adoption means every leader builds on it
- mean_tech_adoption above 50% signals a fast-converging category

METRICS RETURNED:
- trends: ranked emerging features with priority_score
- technologies: technology, leader count, adoption percentage
- summary: trend_count, technology_count, mean_tech_adoption`
}

func describeReadinessReport() string {
	return `Runs gap, suggestion, and trend analysis together and returns one consolidated market-readiness report.

USE WHEN:
- Getting a full competitive picture in one call
- Preparing a product review or investor update
- Deciding whether a product is ready to enter a category

INTERPRETING RESULTS:
- gaps, suggestions, and trends follow the semantics of their standalone tools
- verdict is the readiness bucket from the gap analysis: excellent, good, fair, or needs_improvement
- A needs_improvement verdict with critical gaps means competitors ship features this product lacks

METRICS RETURNED:
- gaps: full competitive gap analysis
- suggestions: top prioritized features
- trends: trend and technology adoption analysis
- verdict: overall readiness`
}
