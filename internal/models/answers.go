package models

import (
	"fmt"
	"strings"

	"launch-assistant/internal/common/validation"
)

// Enum values are the canonical catalog keys. Display text (the emoji-prefixed
// labels shown by the form UI) lives on Label() so lookup-key identity never
// depends on presentation.

// MessagingTested captures whether the founder has validated their messaging.
type MessagingTested string

const (
	MessagingValidated MessagingTested = "Yes, I've gotten direct feedback on my messaging"
	MessagingInformal  MessagingTested = "Sort of... I've talked to people, but nothing structured"
	MessagingUntested  MessagingTested = "No, I haven't tested it yet"
)

func (m MessagingTested) Label() string {
	switch m {
	case MessagingValidated:
		return "✅ " + string(m)
	case MessagingInformal:
		return "🤔 " + string(m)
	case MessagingUntested:
		return "❌ " + string(m)
	}
	return string(m)
}

// LaunchType is the kind of launch being prepared.
type LaunchType string

const (
	LaunchNewProduct    LaunchType = "New Startup/Product Launch"
	LaunchRepositioning LaunchType = "Brand Repositioning (Rebrand or Pivot)"
	LaunchFunding       LaunchType = "Funding Announcement"
	LaunchPartnership   LaunchType = "Major Partnership or Publicity Push"
)

func (t LaunchType) Label() string {
	switch t {
	case LaunchNewProduct:
		return "🚀 " + string(t)
	case LaunchRepositioning:
		return "🔄 " + string(t)
	case LaunchFunding:
		return "💰 " + string(t)
	case LaunchPartnership:
		return "📢 " + string(t)
	}
	return string(t)
}

// FundingStatus is the founder's funding tier.
type FundingStatus string

const (
	FundingBootstrapped FundingStatus = "Bootstrapping (No external funding)"
	FundingUnder1M      FundingStatus = "Raised under $1M"
	Funding1To3M        FundingStatus = "Raised $1M-$3M"
	FundingOver3M       FundingStatus = "Raised $3M+"
)

func (f FundingStatus) Label() string {
	switch f {
	case FundingBootstrapped:
		return "🚀 Bootstrapping (No external funding, self-funded)"
	case FundingUnder1M:
		return "🌱 Raised under $1M (Likely still raising, early-stage)"
	case Funding1To3M:
		return "📈 Raised $1M-$3M (Have 12-18 months of runway)"
	case FundingOver3M:
		return "🏆 Raised $3M+ (Series A+; established growth strategy)"
	}
	return string(f)
}

// PrimaryGoal is what the founder most wants out of the launch.
type PrimaryGoal string

const (
	GoalUsers     PrimaryGoal = "Get Users or Customers"
	GoalInvestors PrimaryGoal = "Attract Investors"
	GoalPress     PrimaryGoal = "Build Press & Awareness"
	GoalInfluence PrimaryGoal = "Create Industry Influence"
)

func (g PrimaryGoal) Label() string {
	switch g {
	case GoalUsers:
		return "🚀 " + string(g)
	case GoalInvestors:
		return "💰 " + string(g)
	case GoalPress:
		return "🎙 " + string(g)
	case GoalInfluence:
		return "🌎 " + string(g)
	}
	return string(g)
}

// AudienceReadiness describes the founder's existing audience.
type AudienceReadiness string

const (
	AudienceEngaged  AudienceReadiness = "Yes, we have an engaged community"
	AudienceSmall    AudienceReadiness = "We have a small following but need more traction"
	AudienceScratch  AudienceReadiness = "No, we're starting from scratch"
)

func (a AudienceReadiness) Label() string {
	switch a {
	case AudienceEngaged:
		return "✅ " + string(a)
	case AudienceSmall:
		return "⚡ " + string(a)
	case AudienceScratch:
		return "❌ " + string(a)
	}
	return string(a)
}

// PostLaunchPriority is the founder's focus after launch day.
type PostLaunchPriority string

const (
	PriorityScaling   PostLaunchPriority = "Scaling & repeatable traction"
	PriorityInvestors PostLaunchPriority = "Investor relations & positioning for next raise"
	PriorityFeedback  PostLaunchPriority = "Optimizing based on customer feedback"
	PriorityPress     PostLaunchPriority = "Sustaining press & industry visibility"
)

func (p PostLaunchPriority) Label() string {
	switch p {
	case PriorityScaling:
		return "📈 Scaling & repeatable traction (growth systems)"
	case PriorityInvestors:
		return "💰 " + string(p)
	case PriorityFeedback:
		return "🛠 " + string(p)
	case PriorityPress:
		return "🔥 " + string(p)
	}
	return string(p)
}

// FormAnswers accumulates the questionnaire answers across steps. It is owned
// by the session and must be fully populated before plan generation.
type FormAnswers struct {
	FirstName          string             `json:"first_name"`
	StartupName        string             `json:"startup_name"`
	Email              string             `json:"email"`
	MessagingTested    MessagingTested    `json:"messaging_tested"`
	LaunchType         LaunchType         `json:"launch_type"`
	FundingStatus      FundingStatus      `json:"funding_status"`
	PrimaryGoal        PrimaryGoal        `json:"primary_goal"`
	AudienceReadiness  AudienceReadiness  `json:"audience_readiness"`
	PostLaunchPriority PostLaunchPriority `json:"post_launch_priority"`
	Industry           string             `json:"industry,omitempty"`
}

// Validate checks that every required field is populated and the email is
// plausible. Called at the form boundary; the plan assembler assumes a valid
// record.
func (a *FormAnswers) Validate() error {
	var missing []string
	if strings.TrimSpace(a.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(a.StartupName) == "" {
		missing = append(missing, "startup_name")
	}
	if a.MessagingTested == "" {
		missing = append(missing, "messaging_tested")
	}
	if a.LaunchType == "" {
		missing = append(missing, "launch_type")
	}
	if a.FundingStatus == "" {
		missing = append(missing, "funding_status")
	}
	if a.PrimaryGoal == "" {
		missing = append(missing, "primary_goal")
	}
	if a.AudienceReadiness == "" {
		missing = append(missing, "audience_readiness")
	}
	if a.PostLaunchPriority == "" {
		missing = append(missing, "post_launch_priority")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !validation.ValidateEmail(a.Email) {
		return fmt.Errorf("invalid email address: %q", a.Email)
	}

	return nil
}
