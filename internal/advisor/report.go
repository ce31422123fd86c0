package advisor

import (
	"time"

	"github.com/sourcegraph/conc"

	"github.com/vantagelabs/vantage/pkg/models"
)

// Reporter runs gap, suggestion, and trend analysis together to produce
// a market-readiness report.
type Reporter struct {
	prioritizer *Prioritizer
	gaps        *GapAnalyzer
}

// NewReporter builds a reporter from pre-configured component analyzers.
func NewReporter(prioritizer *Prioritizer, gaps *GapAnalyzer) *Reporter {
	return &Reporter{prioritizer: prioritizer, gaps: gaps}
}

// Report runs the three analyses in parallel over the same inputs. The
// overall verdict is the readiness bucket from the gap analysis.
func (r *Reporter) Report(category string, leaders []models.MarketLeader, candidates, trendPool []models.Feature, currentFeatures []string) *models.ReadinessReport {
	report := &models.ReadinessReport{
		Category:    category,
		GeneratedAt: time.Now().UTC(),
	}

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		report.Gaps = r.gaps.Analyze(category, leaders, currentFeatures)
	})
	wg.Go(func() {
		report.Suggestions = r.prioritizer.Suggest(candidates, currentFeatures)
	})
	wg.Go(func() {
		report.Trends = AnalyzeTrends(category, leaders, trendPool)
	})
	wg.Wait()

	report.Verdict = report.Gaps.Summary.Readiness
	return report
}
