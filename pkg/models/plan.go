package models

import "time"

// PlanComplexity scales effort estimates, timelines, and team size.
type PlanComplexity string

const (
	ComplexitySimple     PlanComplexity = "simple"
	ComplexityMedium     PlanComplexity = "medium"
	ComplexityComplex    PlanComplexity = "complex"
	ComplexityEnterprise PlanComplexity = "enterprise"
)

// Task is one unit of work inside a plan phase.
type Task struct {
	Number         int      `json:"number" toon:"number"`
	Name           string   `json:"name" toon:"name"`
	Description    string   `json:"description" toon:"description"`
	EffortDays     int      `json:"effort_days" toon:"effort_days"`
	Checklist      []string `json:"checklist" toon:"checklist"`
	AIInstructions string   `json:"ai_instructions,omitempty" toon:"ai_instructions,omitempty"`
}

// Phase groups tasks into an ordered stage of delivery.
type Phase struct {
	Number      int    `json:"number" toon:"number"`
	Name        string `json:"name" toon:"name"`
	Description string `json:"description" toon:"description"`
	Tasks       []Task `json:"tasks" toon:"tasks"`
}

// PhaseWindow places a phase on the overall timeline.
type PhaseWindow struct {
	Name      string `json:"name" toon:"name"`
	StartWeek int    `json:"start_week" toon:"start_week"`
	EndWeek   int    `json:"end_week" toon:"end_week"`
}

// Timeline is the schedule estimate for the whole plan.
type Timeline struct {
	TotalWeeks int           `json:"total_weeks" toon:"total_weeks"`
	Phases     []PhaseWindow `json:"phases" toon:"phases"`
}

// TeamRole is a staffing recommendation.
type TeamRole struct {
	Role  string `json:"role" toon:"role"`
	Count int    `json:"count" toon:"count"`
}

// Risk is an entry in the plan's risk register.
type Risk struct {
	Name       string `json:"name" toon:"name"`
	Likelihood string `json:"likelihood" toon:"likelihood"`
	Mitigation string `json:"mitigation" toon:"mitigation"`
}

// DevelopmentPlan is the full plan document model. Rendering to markdown
// is pure formatting; only GeneratedAt varies between identical builds.
type DevelopmentPlan struct {
	Title       string         `json:"title" toon:"title"`
	GeneratedAt time.Time      `json:"generated_at" toon:"generated_at"`
	Complexity  PlanComplexity `json:"complexity" toon:"complexity"`
	Focus       string         `json:"focus,omitempty" toon:"focus,omitempty"`
	Overview    string         `json:"overview" toon:"overview"`
	Features    []string       `json:"features" toon:"features"`
	Phases      []Phase        `json:"phases" toon:"phases"`
	Timeline    Timeline       `json:"timeline" toon:"timeline"`
	Team        []TeamRole     `json:"team" toon:"team"`
	Risks       []Risk         `json:"risks" toon:"risks"`
	Metrics     []string       `json:"metrics" toon:"metrics"`
}

// TaskCount returns the total number of tasks across all phases.
func (p *DevelopmentPlan) TaskCount() int {
	n := 0
	for _, phase := range p.Phases {
		n += len(phase.Tasks)
	}
	return n
}
