package models

import "strings"

// PlanSource records which tier of the resolution chain produced a plan
// section.
type PlanSource string

const (
	SourceCatalog PlanSource = "catalog"
	SourceStatic  PlanSource = "static"
	SourceAI      PlanSource = "ai"
	SourceGeneric PlanSource = "generic"
)

// PlanItem is a single recommendation line. Title is the text up to the first
// period, Description the remainder; either may be empty for short items.
type PlanItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewPlanItem splits a raw recommendation line into title and description at
// the first period.
func NewPlanItem(raw string) PlanItem {
	raw = strings.TrimSpace(raw)
	idx := strings.Index(raw, ".")
	if idx < 0 || idx == len(raw)-1 {
		return PlanItem{Title: strings.TrimSuffix(raw, ".")}
	}
	return PlanItem{
		Title:       strings.TrimSpace(raw[:idx]),
		Description: strings.TrimSpace(raw[idx+1:]),
	}
}

// Text renders the item back to a single line.
func (p PlanItem) Text() string {
	switch {
	case p.Description == "":
		return p.Title
	case p.Title == "":
		return p.Description
	default:
		return p.Title + ". " + p.Description
	}
}

// LaunchSummary restates the founder's answers at the top of the plan.
type LaunchSummary struct {
	FirstName          string `json:"first_name"`
	StartupName        string `json:"startup_name"`
	LaunchType         string `json:"launch_type"`
	FundingStatus      string `json:"funding_status"`
	PrimaryGoal        string `json:"primary_goal"`
	AudienceReadiness  string `json:"audience_readiness"`
	PostLaunchPriority string `json:"post_launch_priority"`
}

// Plan is the assembled launch plan returned to the caller and rendered into
// the plan email.
type Plan struct {
	Summary         LaunchSummary `json:"summary"`
	MessagingAdvice string        `json:"messaging_advice"`
	Strategies      []PlanItem    `json:"strategies"`
	NextSteps       []string      `json:"next_steps"`
	StrategySource  PlanSource    `json:"strategy_source"`
	NextStepSource  PlanSource    `json:"next_step_source"`
}
