package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagelabs/vantage/pkg/models"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
}

func TestBuildPhasesAndTaskNumbering(t *testing.T) {
	b := NewBuilder(WithComplexity(models.ComplexityMedium))
	p := b.Build([]string{"login", "billing"})

	require.Len(t, p.Phases, 4)
	assert.Equal(t, "Foundation", p.Phases[0].Name)
	assert.Equal(t, "Core Features", p.Phases[1].Name)
	assert.Equal(t, "Testing & QA", p.Phases[2].Name)
	assert.Equal(t, "Deployment", p.Phases[3].Name)

	// Task numbers run sequentially across phases.
	num := 0
	for _, phase := range p.Phases {
		for _, task := range phase.Tasks {
			num++
			assert.Equal(t, num, task.Number)
		}
	}
	assert.Equal(t, num, p.TaskCount())

	// One core task per feature, each with a checklist and instructions.
	require.Len(t, p.Phases[1].Tasks, 2)
	for _, task := range p.Phases[1].Tasks {
		assert.NotEmpty(t, task.Checklist)
		assert.NotEmpty(t, task.AIInstructions)
	}
	assert.Equal(t, "Implement login", p.Phases[1].Tasks[0].Name)
}

func TestBuildComplexityScalesEffort(t *testing.T) {
	features := []string{"search"}

	simple := NewBuilder(WithComplexity(models.ComplexitySimple)).Build(features)
	enterprise := NewBuilder(WithComplexity(models.ComplexityEnterprise)).Build(features)

	assert.Equal(t, 2, simple.Phases[1].Tasks[0].EffortDays)
	assert.Equal(t, 10, enterprise.Phases[1].Tasks[0].EffortDays)
	assert.Greater(t, enterprise.Timeline.TotalWeeks, simple.Timeline.TotalWeeks)
	assert.Greater(t, len(enterprise.Team), len(simple.Team))
	assert.Greater(t, len(enterprise.Risks), len(simple.Risks))
}

func TestBuildUnknownComplexityFallsBackToMedium(t *testing.T) {
	p := NewBuilder(WithComplexity("galactic")).Build([]string{"login"})
	assert.Equal(t, models.ComplexityMedium, p.Complexity)
}

func TestBuildTimelineWindowsAreContiguous(t *testing.T) {
	p := NewBuilder(WithComplexity(models.ComplexityComplex)).Build([]string{"a", "b", "c"})

	tl := p.Timeline
	require.NotEmpty(t, tl.Phases)
	assert.Equal(t, 1, tl.Phases[0].StartWeek)
	for i := 1; i < len(tl.Phases); i++ {
		assert.Equal(t, tl.Phases[i-1].EndWeek+1, tl.Phases[i].StartWeek)
	}
	assert.Equal(t, tl.TotalWeeks, tl.Phases[len(tl.Phases)-1].EndWeek)
}

func TestBuildTimelineScalesWithFeatureCount(t *testing.T) {
	b := NewBuilder(WithComplexity(models.ComplexityMedium))

	few := b.Build([]string{"a"})
	many := b.Build([]string{"a", "b", "c", "d", "e", "f"})

	assert.Greater(t, many.Timeline.TotalWeeks, few.Timeline.TotalWeeks)
}

func TestBuildIsDeterministicExceptTimestamp(t *testing.T) {
	features := []string{"login", "billing"}

	first := NewBuilder(WithComplexity(models.ComplexitySimple), withClock(fixedClock())).Build(features)
	second := NewBuilder(WithComplexity(models.ComplexitySimple), withClock(fixedClock())).Build(features)

	assert.Equal(t, first, second)
}

func TestBuildFocusAppearsInOverview(t *testing.T) {
	p := NewBuilder(WithPlanFocus("revenue_growth")).Build([]string{"billing"})
	assert.Contains(t, p.Overview, "revenue_growth")

	all := NewBuilder(WithPlanFocus("all")).Build([]string{"billing"})
	assert.NotContains(t, all.Overview, "Strategic focus")
}
