// internal/milestones/timeline.go
package milestones

import (
	"fmt"
	"strings"
	"time"

	"launch-assistant/internal/models"
)

// SuggestTimeline builds the draft milestone set for a plan. The window
// scales with funding tier: bootstrapped companies get a 4-week pre-launch /
// 4-week post-launch runway, sub-$1M raises 5/5, everything else 6/6.
// Drafts are never persisted here; the caller adds the ones the founder
// keeps.
func (e *Engine) SuggestTimeline(summary models.LaunchSummary) []models.Milestone {
	today := e.now()

	var preLaunchWeeks, postLaunchWeeks int
	switch {
	case strings.Contains(summary.FundingStatus, "Bootstrapping"):
		preLaunchWeeks, postLaunchWeeks = 4, 4
	case strings.Contains(summary.FundingStatus, "under $1M"):
		preLaunchWeeks, postLaunchWeeks = 5, 5
	default:
		preLaunchWeeks, postLaunchWeeks = 6, 6
	}
	launchDay := today.AddDate(0, 0, preLaunchWeeks*7)

	drafts := []models.Milestone{
		{
			Name:        "Messaging Validation Complete",
			Date:        weeksFrom(today, 1),
			Description: "Complete customer interviews and messaging validation",
			Type:        models.MilestonePreLaunch,
		},
		{
			Name:        "Content Creation Deadline",
			Date:        weeksFrom(today, preLaunchWeeks-2),
			Description: "Finalize all launch content, including website, social media posts, and press materials",
			Type:        models.MilestonePreLaunch,
		},
		{
			Name:        "Launch Day",
			Date:        launchDay.Format(models.DateLayout),
			Description: fmt.Sprintf("Official %s launch date", summary.LaunchType),
			Type:        models.MilestoneLaunch,
		},
		{
			Name:        "Post-Launch Analysis",
			Date:        weeksFrom(launchDay, 1),
			Description: "Analyze initial launch metrics and adjust strategy",
			Type:        models.MilestonePostLaunch,
		},
		{
			Name:        "Growth Strategy Implementation",
			Date:        weeksFrom(launchDay, postLaunchWeeks),
			Description: "Implement ongoing growth strategy based on launch results",
			Type:        models.MilestonePostLaunch,
		},
	}

	switch {
	case strings.Contains(summary.LaunchType, "New Startup/Product Launch"):
		drafts = append(drafts, models.Milestone{
			Name:        "Beta User Feedback Session",
			Date:        weeksFrom(today, 2),
			Description: "Collect feedback from beta users to refine product",
			Type:        models.MilestonePreLaunch,
		})
	case strings.Contains(summary.LaunchType, "Brand Repositioning"):
		drafts = append(drafts, models.Milestone{
			Name:        "Stakeholder Communication",
			Date:        weeksFrom(today, 2),
			Description: "Communicate rebranding to key stakeholders and team",
			Type:        models.MilestonePreLaunch,
		})
	case strings.Contains(summary.LaunchType, "Funding Announcement"):
		drafts = append(drafts, models.Milestone{
			Name:        "Investor Relations Setup",
			Date:        weeksFrom(today, 2),
			Description: "Prepare investor relations materials and communications",
			Type:        models.MilestonePreLaunch,
		})
	case strings.Contains(summary.LaunchType, "Partnership"):
		drafts = append(drafts, models.Milestone{
			Name:        "Partner Coordination Meeting",
			Date:        weeksFrom(today, 2),
			Description: "Coordinate launch activities with partnership team",
			Type:        models.MilestonePreLaunch,
		})
	}

	return drafts
}

func weeksFrom(base time.Time, weeks int) string {
	return base.AddDate(0, 0, weeks*7).Format(models.DateLayout)
}
