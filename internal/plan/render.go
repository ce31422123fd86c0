package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/vantagelabs/vantage/pkg/models"
)

// Render serializes a plan to markdown. The output is a pure function
// of the plan, so identical plans render to identical documents apart
// from the generated-at line.
func Render(p *models.DevelopmentPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "Generated: %s\n", p.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Complexity: %s\n", p.Complexity)
	if p.Focus != "" && p.Focus != "all" {
		fmt.Fprintf(&b, "Focus: %s\n", p.Focus)
	}
	b.WriteString("\n")

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "%s\n\n", p.Overview)

	b.WriteString("## Features\n\n")
	for _, f := range p.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\n")

	for _, phase := range p.Phases {
		renderPhase(&b, phase)
	}

	renderTimeline(&b, p.Timeline)
	renderTeam(&b, p.Team)
	renderRisks(&b, p.Risks)
	renderMetrics(&b, p.Metrics)

	return b.String()
}

func renderPhase(b *strings.Builder, phase models.Phase) {
	fmt.Fprintf(b, "## Phase %d: %s\n\n", phase.Number, phase.Name)
	fmt.Fprintf(b, "%s\n\n", phase.Description)

	for _, task := range phase.Tasks {
		fmt.Fprintf(b, "### Task #%d: %s\n\n", task.Number, task.Name)
		fmt.Fprintf(b, "%s\n\n", task.Description)
		fmt.Fprintf(b, "Estimated effort: %d day(s)\n\n", task.EffortDays)

		for _, item := range task.Checklist {
			fmt.Fprintf(b, "- [ ] %s\n", item)
		}
		if len(task.Checklist) > 0 {
			b.WriteString("\n")
		}

		if task.AIInstructions != "" {
			b.WriteString("AI implementation instructions:\n\n")
			fmt.Fprintf(b, "```\n%s\n```\n\n", task.AIInstructions)
		}
	}
}

func renderTimeline(b *strings.Builder, tl models.Timeline) {
	b.WriteString("## Timeline\n\n")
	fmt.Fprintf(b, "Total duration: %d week(s)\n\n", tl.TotalWeeks)
	b.WriteString("| Phase | Start Week | End Week |\n")
	b.WriteString("|-------|------------|----------|\n")
	for _, w := range tl.Phases {
		fmt.Fprintf(b, "| %s | %d | %d |\n", w.Name, w.StartWeek, w.EndWeek)
	}
	b.WriteString("\n")
}

func renderTeam(b *strings.Builder, team []models.TeamRole) {
	b.WriteString("## Team\n\n")
	for _, role := range team {
		fmt.Fprintf(b, "- %d x %s\n", role.Count, role.Role)
	}
	b.WriteString("\n")
}

func renderRisks(b *strings.Builder, risks []models.Risk) {
	b.WriteString("## Risks\n\n")
	for _, r := range risks {
		fmt.Fprintf(b, "- **%s** (likelihood: %s): %s\n", r.Name, r.Likelihood, r.Mitigation)
	}
	b.WriteString("\n")
}

func renderMetrics(b *strings.Builder, metrics []string) {
	b.WriteString("## Success Metrics\n\n")
	for _, m := range metrics {
		fmt.Fprintf(b, "- [ ] %s\n", m)
	}
}
