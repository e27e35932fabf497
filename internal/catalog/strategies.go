// internal/catalog/strategies.go
package catalog

import (
	"launch-assistant/internal/models"
	"launch-assistant/pkg/catalogfile"
)

// Built-in strategy table. Coverage is deliberately uneven: the new-launch
// branch is fully populated across funding tiers, the other launch types only
// carry the tier they were authored for. Missing combinations fall through to
// the next resolution tier.
var staticStrategies = catalogfile.StrategyTable{
	"New Startup/Product Launch": {
		"Bootstrapping (No external funding)": {
			"Get Users or Customers": {
				"Focus on founder-led storytelling through guest podcasts and social content",
				"Create a limited beta program with exclusive perks to drive early adoption",
				"Build direct relationships with early users for feedback and testimonials",
			},
			"Attract Investors": {
				"Document your traction journey publicly to showcase momentum",
				"Create case studies showing early customer impact",
				"Target niche industry events where investors in your space gather",
			},
			"Build Press & Awareness": {
				"Craft a compelling founder story that ties to current trends",
				"Pitch to industry-specific publications rather than mainstream media",
				"Create shareable content that showcases your unique approach",
			},
			"Create Industry Influence": {
				"Start a focused content series solving key problems in your industry",
				"Join relevant communities as a contributor, not just a promoter",
				"Collaborate with complementary startups for wider reach",
			},
		},
		"Raised under $1M": {
			"Get Users or Customers": {
				"Run targeted ad experiments to identify high-converting messages",
				"Create an exclusive waitlist with referral incentives",
				"Partner with complementary products for shared launches",
			},
			"Attract Investors": {
				"Build a data-driven pitch showing early traction metrics",
				"Create investor-specific content demonstrating market understanding",
				"Get warm introductions through strategic advisory relationships",
			},
			"Build Press & Awareness": {
				"Position your funding as validation for a larger trend story",
				"Create data-driven content that journalists can easily reference",
				"Build relationships with 3-5 key reporters in your space",
			},
			"Create Industry Influence": {
				"Participate in industry panels and speaking opportunities",
				"Launch a small but high-quality thought leadership publication",
				"Create a community initiative that positions you as a connector",
			},
		},
		"Raised $1M-$3M": {
			"Get Users or Customers": {
				"Scale successful acquisition channels with increased ad spend",
				"Implement a full-featured referral program with tiered rewards",
				"Execute co-marketing campaigns with established partners",
			},
			"Attract Investors": {
				"Create quarterly investor updates showcasing growth metrics",
				"Secure strategic advisors who can connect you to your next round",
				"Generate press coverage highlighting your unique market position",
			},
			"Build Press & Awareness": {
				"Hire a specialized PR firm for a coordinated media campaign",
				"Create a newsworthy data report about your industry",
				"Launch a creative campaign designed for social sharing",
			},
			"Create Industry Influence": {
				"Host industry roundtables with key decision-makers",
				"Launch an authoritative content platform or podcast",
				"Create an industry index or report that becomes a reference point",
			},
		},
		"Raised $3M+": {
			"Get Users or Customers": {
				"Implement omnichannel marketing with consistent brand messaging",
				"Launch high-production value content series",
				"Execute high-visibility partnerships with market leaders",
			},
			"Attract Investors": {
				"Position your company as category-defining through thought leadership",
				"Host exclusive investor-focused events showcasing your vision",
				"Generate tier-one press coverage highlighting growth metrics",
			},
			"Build Press & Awareness": {
				"Execute a comprehensive PR strategy across multiple channels",
				"Create viral-optimized content campaigns with significant budget",
				"Sponsor or create signature industry events",
			},
			"Create Industry Influence": {
				"Position your CEO as an industry visionary through speaking and publishing",
				"Create a proprietary methodology or framework for your industry",
				"Launch a foundation or initiative addressing industry-wide challenges",
			},
		},
	},
	"Brand Repositioning (Rebrand or Pivot)": {
		"Bootstrapping (No external funding)": {
			"Get Users or Customers": {
				"Craft a clear narrative explaining the 'why' behind your repositioning",
				"Create before/after content showing the evolution",
				"Personally reach out to existing customers with special loyalty offers",
			},
			"Attract Investors": {
				"Frame your repositioning as strategic market adaptation",
				"Show early validation metrics from the new direction",
				"Create case studies showing the problem your new positioning solves",
			},
			"Build Press & Awareness": {
				"Pitch your pivot as a response to market insights",
				"Create visual assets that tell your transformation story",
				"Leverage customer testimonials to validate the change",
			},
			"Create Industry Influence": {
				"Document your repositioning journey as a learning resource",
				"Position the change as thought leadership on where the market is headed",
				"Host discussions around the challenges your new position addresses",
			},
		},
	},
	"Funding Announcement": {
		"Raised under $1M": {
			"Get Users or Customers": {
				"Frame your funding as validation of your customer-first approach",
				"Create special offers for customers who join during your funding momentum",
				"Use funding press to drive traffic to high-converting landing pages",
			},
			"Attract Investors": {
				"Position this round as the foundation for a bigger vision",
				"Create investor-specific content showcasing your capital efficiency",
				"Document key milestones achieved with minimal funding",
			},
			"Build Press & Awareness": {
				"Craft a funding announcement that tells a larger market story",
				"Secure quotes from investors explaining why they invested",
				"Create a funding FAQ addressing common questions",
			},
			"Create Industry Influence": {
				"Share insights about your fundraising process to help other founders",
				"Host a small event bringing together investors and industry peers",
				"Launch a thought leadership piece about your industry's funding landscape",
			},
		},
	},
	"Major Partnership or Publicity Push": {
		"Bootstrapping (No external funding)": {
			"Get Users or Customers": {
				"Design partnership terms that prioritize customer acquisition",
				"Create exclusive offers for your partner's audience",
				"Focus on partners with highly engaged audiences rather than size",
			},
			"Attract Investors": {
				"Structure partnerships that demonstrate market validation",
				"Secure case studies from partners highlighting your value",
				"Use partnerships to generate data points for investor pitches",
			},
			"Build Press & Awareness": {
				"Create joint press releases with compelling narrative hooks",
				"Design visual content that both partners can share",
				"Host a joint webinar or event to showcase the partnership",
			},
			"Create Industry Influence": {
				"Co-create thought leadership content with your partner",
				"Launch a joint research initiative or industry report",
				"Create a partner advisory board for ongoing collaboration",
			},
		},
	},
}

// GenericStrategies is the last-resort recommendation set when no other tier
// resolves.
var GenericStrategies = []string{
	"Create a compelling story that connects your mission to customer needs",
	"Focus on 1-2 high-impact marketing channels that align with your resources",
	"Build relationships with influencers and partners in your industry",
}

// StaticStrategies looks up the built-in strategy table for the exact answer
// combination.
func StaticStrategies(launchType models.LaunchType, funding models.FundingStatus, goal models.PrimaryGoal) ([]string, bool) {
	return staticStrategies.Lookup(string(launchType), string(funding), string(goal))
}
