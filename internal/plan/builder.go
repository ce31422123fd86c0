// Package plan turns a feature list into a phased development plan and
// renders it as a markdown document.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/vantagelabs/vantage/pkg/models"
)

// complexityProfile fixes the knobs that scale with plan complexity.
type complexityProfile struct {
	taskDays        int // implementation days per feature task
	foundationWeeks int
	testingWeeks    int
	deploymentWeeks int
	team            []models.TeamRole
	risks           []models.Risk
}

var complexityProfiles = map[models.PlanComplexity]complexityProfile{
	models.ComplexitySimple: {
		taskDays:        2,
		foundationWeeks: 1,
		testingWeeks:    1,
		deploymentWeeks: 1,
		team: []models.TeamRole{
			{Role: "Full Stack Developer", Count: 1},
		},
		risks: []models.Risk{
			{Name: "Scope creep", Likelihood: "medium", Mitigation: "Lock the feature list before development starts"},
		},
	},
	models.ComplexityMedium: {
		taskDays:        4,
		foundationWeeks: 1,
		testingWeeks:    2,
		deploymentWeeks: 1,
		team: []models.TeamRole{
			{Role: "Backend Developer", Count: 1},
			{Role: "Frontend Developer", Count: 1},
			{Role: "Designer", Count: 1},
		},
		risks: []models.Risk{
			{Name: "Scope creep", Likelihood: "medium", Mitigation: "Lock the feature list before development starts"},
			{Name: "Integration delays", Likelihood: "medium", Mitigation: "Stub external dependencies early and test against contracts"},
		},
	},
	models.ComplexityComplex: {
		taskDays:        7,
		foundationWeeks: 2,
		testingWeeks:    2,
		deploymentWeeks: 1,
		team: []models.TeamRole{
			{Role: "Backend Developer", Count: 2},
			{Role: "Frontend Developer", Count: 2},
			{Role: "Designer", Count: 1},
			{Role: "QA Engineer", Count: 1},
		},
		risks: []models.Risk{
			{Name: "Scope creep", Likelihood: "high", Mitigation: "Lock the feature list before development starts"},
			{Name: "Integration delays", Likelihood: "medium", Mitigation: "Stub external dependencies early and test against contracts"},
			{Name: "Performance regressions", Likelihood: "medium", Mitigation: "Establish load-test baselines during the foundation phase"},
		},
	},
	models.ComplexityEnterprise: {
		taskDays:        10,
		foundationWeeks: 2,
		testingWeeks:    3,
		deploymentWeeks: 2,
		team: []models.TeamRole{
			{Role: "Backend Developer", Count: 3},
			{Role: "Frontend Developer", Count: 2},
			{Role: "Designer", Count: 1},
			{Role: "QA Engineer", Count: 2},
			{Role: "DevOps Engineer", Count: 1},
			{Role: "Project Manager", Count: 1},
		},
		risks: []models.Risk{
			{Name: "Scope creep", Likelihood: "high", Mitigation: "Lock the feature list before development starts"},
			{Name: "Integration delays", Likelihood: "high", Mitigation: "Stub external dependencies early and test against contracts"},
			{Name: "Performance regressions", Likelihood: "medium", Mitigation: "Establish load-test baselines during the foundation phase"},
			{Name: "Compliance gaps", Likelihood: "medium", Mitigation: "Schedule security and compliance review before launch"},
		},
	},
}

var successMetrics = []string{
	"All planned features shipped and verified in production",
	"Test coverage above 80% for new code",
	"No critical defects open at launch",
	"Core user flows complete in under 2 seconds",
}

// Builder assembles development plans.
type Builder struct {
	complexity models.PlanComplexity
	focus      string
	now        func() time.Time
}

// BuilderOption configures the Builder.
type BuilderOption func(*Builder)

// WithComplexity sets the plan complexity. Unknown values fall back to
// medium.
func WithComplexity(c models.PlanComplexity) BuilderOption {
	return func(b *Builder) {
		if _, ok := complexityProfiles[c]; ok {
			b.complexity = c
		}
	}
}

// WithPlanFocus records the strategic focus in the plan overview.
func WithPlanFocus(focus string) BuilderOption {
	return func(b *Builder) {
		b.focus = focus
	}
}

// withClock fixes the timestamp source for tests.
func withClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a plan builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		complexity: models.ComplexityMedium,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces the full plan for a feature list. Everything except
// GeneratedAt is a pure function of the inputs.
func (b *Builder) Build(features []string) *models.DevelopmentPlan {
	profile := complexityProfiles[b.complexity]

	plan := &models.DevelopmentPlan{
		Title:       "Development Plan",
		GeneratedAt: b.now().UTC(),
		Complexity:  b.complexity,
		Focus:       b.focus,
		Overview:    b.overview(features),
		Features:    features,
		Team:        profile.team,
		Risks:       profile.risks,
		Metrics:     successMetrics,
	}

	taskNum := 1
	next := func() int { n := taskNum; taskNum++; return n }

	plan.Phases = []models.Phase{
		foundationPhase(next),
		coreFeaturesPhase(features, profile.taskDays, next),
		testingPhase(next),
		deploymentPhase(next),
	}
	plan.Timeline = b.timeline(features, profile)

	return plan
}

func (b *Builder) overview(features []string) string {
	overview := fmt.Sprintf("A %s-complexity delivery plan covering %d feature(s): %s.",
		b.complexity, len(features), strings.Join(features, ", "))
	if b.focus != "" && b.focus != "all" {
		overview += fmt.Sprintf(" Strategic focus: %s.", b.focus)
	}
	return overview
}

func foundationPhase(next func() int) models.Phase {
	return models.Phase{
		Number:      1,
		Name:        "Foundation",
		Description: "Project scaffolding, architecture, and shared infrastructure.",
		Tasks: []models.Task{
			{
				Number:      next(),
				Name:        "Project Setup",
				Description: "Initialize the repository, CI pipeline, and development environment.",
				EffortDays:  2,
				Checklist: []string{
					"Create repository and branch protection rules",
					"Configure CI with lint and test stages",
					"Provision development and staging environments",
				},
			},
			{
				Number:      next(),
				Name:        "Architecture & Data Model",
				Description: "Design the system architecture and core data model.",
				EffortDays:  3,
				Checklist: []string{
					"Document service boundaries and interfaces",
					"Design the data model and migrations",
					"Review the design with the team",
				},
			},
		},
	}
}

func coreFeaturesPhase(features []string, taskDays int, next func() int) models.Phase {
	tasks := make([]models.Task, 0, len(features))
	for _, f := range features {
		tasks = append(tasks, models.Task{
			Number:      next(),
			Name:        fmt.Sprintf("Implement %s", f),
			Description: fmt.Sprintf("Design, build, and verify the %s feature end to end.", f),
			EffortDays:  taskDays,
			Checklist: []string{
				fmt.Sprintf("Write a short design note for %s", f),
				"Implement backend logic and API surface",
				"Implement user-facing interface",
				"Add unit and integration tests",
				"Pass code review and merge",
			},
			AIInstructions: fmt.Sprintf(
				"Implement the %q feature. Follow the existing project conventions, keep the change minimal and well tested, and update documentation for any new API surface.", f),
		})
	}
	return models.Phase{
		Number:      2,
		Name:        "Core Features",
		Description: "Feature implementation, one task per planned feature.",
		Tasks:       tasks,
	}
}

func testingPhase(next func() int) models.Phase {
	return models.Phase{
		Number:      3,
		Name:        "Testing & QA",
		Description: "System-level verification beyond per-feature tests.",
		Tasks: []models.Task{
			{
				Number:      next(),
				Name:        "Integration & Regression Testing",
				Description: "Exercise cross-feature flows and lock in a regression suite.",
				EffortDays:  4,
				Checklist: []string{
					"Write end-to-end tests for the main user journeys",
					"Run a full regression pass and triage findings",
					"Fix all critical and high-severity defects",
				},
			},
		},
	}
}

func deploymentPhase(next func() int) models.Phase {
	return models.Phase{
		Number:      4,
		Name:        "Deployment",
		Description: "Release preparation and production rollout.",
		Tasks: []models.Task{
			{
				Number:      next(),
				Name:        "Production Rollout",
				Description: "Ship to production with monitoring and a rollback path.",
				EffortDays:  3,
				Checklist: []string{
					"Prepare rollback plan and feature flags",
					"Deploy to production behind gradual rollout",
					"Monitor error rates and key metrics for 48 hours",
				},
			},
		},
	}
}

func (b *Builder) timeline(features []string, profile complexityProfile) models.Timeline {
	coreDays := len(features) * profile.taskDays
	coreWeeks := (coreDays + 4) / 5 // 5 working days per week, round up
	if coreWeeks < 1 {
		coreWeeks = 1
	}

	windows := make([]models.PhaseWindow, 0, 4)
	week := 1
	add := func(name string, weeks int) {
		windows = append(windows, models.PhaseWindow{
			Name:      name,
			StartWeek: week,
			EndWeek:   week + weeks - 1,
		})
		week += weeks
	}

	add("Foundation", profile.foundationWeeks)
	add("Core Features", coreWeeks)
	add("Testing & QA", profile.testingWeeks)
	add("Deployment", profile.deploymentWeeks)

	return models.Timeline{
		TotalWeeks: week - 1,
		Phases:     windows,
	}
}
