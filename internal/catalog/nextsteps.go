// internal/catalog/nextsteps.go
package catalog

import (
	"launch-assistant/internal/models"
	"launch-assistant/pkg/catalogfile"
)

// Built-in next-step table. Only the bootstrapped, engaged-audience branch
// was ever authored; every other combination resolves further down the chain.
var staticNextSteps = catalogfile.NextStepTable{
	"Bootstrapping (No external funding)": {
		"Yes, we have an engaged community": {
			"Scaling & repeatable traction": {
				"1. Analyze which launch channels delivered highest ROI",
				"2. Document repeatable processes for your best-performing channels",
				"3. Create a lean content calendar focused on high-conversion topics",
			},
			"Investor relations & positioning for next raise": {
				"1. Build a simple investor update template highlighting key metrics",
				"2. Identify 10-15 potential angels or micro-VCs aligned with your vision",
				"3. Create a basic pitch deck focused on traction and capital efficiency",
			},
			"Optimizing based on customer feedback": {
				"1. Implement a simple feedback collection system",
				"2. Identify the top 3 points of friction in your current experience",
				"3. Create a weekly iteration schedule focused on quick wins",
			},
			"Sustaining press & industry visibility": {
				"1. Develop a simple PR calendar with monthly goals",
				"2. Create a content repurposing system to maximize reach",
				"3. Join 3-5 communities where your audience gathers",
			},
		},
	},
}

// GenericNextSteps is the last-resort next-step list.
var GenericNextSteps = []string{
	"1. Document what worked and what didn't in your launch",
	"2. Focus on optimizing your best-performing channel",
	"3. Create a 30-day action plan based on initial results",
}

// StaticNextSteps looks up the built-in next-step table for the exact answer
// combination.
func StaticNextSteps(funding models.FundingStatus, audience models.AudienceReadiness, priority models.PostLaunchPriority) ([]string, bool) {
	return staticNextSteps.Lookup(string(funding), string(audience), string(priority))
}

// MessagingAdvice returns the advice paragraph for the founder's messaging
// validation status. Unknown values get the untested advice.
func MessagingAdvice(tested models.MessagingTested) string {
	switch tested {
	case models.MessagingValidated:
		return "Your messaging is already rooted in real insights, which gives us a solid foundation for your launch."
	case models.MessagingInformal:
		return "Before finalizing your launch plan, consider conducting 7 structured interviews with your ideal audience. Show them your landing page and collect specific feedback on what's compelling and what would make them buy."
	default:
		return "Your first step should be validating your messaging. Create a draft landing page and put it in front of your target audience to collect real reactions before investing in your launch."
	}
}
