package plan

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantagelabs/vantage/pkg/models"
)

func TestRenderSimplePlan(t *testing.T) {
	p := NewBuilder(WithComplexity(models.ComplexitySimple), withClock(fixedClock())).Build([]string{"login"})
	doc := Render(p)

	assert.Contains(t, doc, "# Development Plan")
	assert.Contains(t, doc, "### Task #1:")
	assert.Contains(t, doc, "- [ ]")
	assert.Contains(t, doc, "Implement login")
	assert.Contains(t, doc, "## Phase 2: Core Features")
	assert.Contains(t, doc, "## Timeline")
	assert.Contains(t, doc, "## Team")
	assert.Contains(t, doc, "## Risks")
	assert.Contains(t, doc, "## Success Metrics")

	// AI instructions sit inside a fenced block.
	assert.Contains(t, doc, "```\nImplement the \"login\" feature.")
}

func TestRenderStructureStableAcrossRuns(t *testing.T) {
	build := func(at time.Time) string {
		clock := func() time.Time { return at }
		p := NewBuilder(WithComplexity(models.ComplexitySimple), withClock(clock)).Build([]string{"login"})
		return Render(p)
	}

	first := build(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	second := build(time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC))

	// Strip the timestamp line; everything else must be byte identical.
	strip := func(doc string) string {
		lines := strings.Split(doc, "\n")
		kept := lines[:0]
		for _, l := range lines {
			if strings.HasPrefix(l, "Generated: ") {
				continue
			}
			kept = append(kept, l)
		}
		return strings.Join(kept, "\n")
	}

	assert.NotEqual(t, first, second)
	assert.Equal(t, strip(first), strip(second))
}

func TestRenderTimelineTable(t *testing.T) {
	p := NewBuilder(WithComplexity(models.ComplexityMedium)).Build([]string{"a", "b"})
	doc := Render(p)

	require.Contains(t, doc, "| Phase | Start Week | End Week |")
	assert.Contains(t, doc, "| Foundation | 1 |")
	assert.Contains(t, doc, "| Deployment |")
}

func TestRenderOmitsFocusLineWhenUnset(t *testing.T) {
	p := NewBuilder().Build([]string{"login"})
	assert.NotContains(t, Render(p), "Focus:")

	focused := NewBuilder(WithPlanFocus("innovation")).Build([]string{"login"})
	assert.Contains(t, Render(focused), "Focus: innovation")
}
