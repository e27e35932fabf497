// internal/milestones/calendar.go
package milestones

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/models"
)

const calendarHome = "https://calendar.google.com"

// CalendarLink builds a Google Calendar template URL for one milestone as an
// all-day event (end date is the following day). With an empty id the
// chronologically first milestone is exported, its details noting how many
// milestones exist in total since the template URL cannot carry more than one
// event. An owner with no milestones gets the plain calendar homepage.
func (e *Engine) CalendarLink(ctx context.Context, owner, id string) (string, error) {
	milestones, err := e.List(ctx, owner)
	if err != nil {
		return "", err
	}
	if len(milestones) == 0 {
		return calendarHome, nil
	}

	var target models.Milestone
	details := ""
	if id != "" {
		found := false
		for _, m := range milestones {
			if m.ID == id {
				target = m
				found = true
				break
			}
		}
		if !found {
			return "", stderrors.NewMilestoneNotFoundError(id)
		}
		details = target.Description
	} else {
		sorted := append([]models.Milestone(nil), milestones...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
		target = sorted[0]
		details = fmt.Sprintf("%s (first of %d milestones)", target.Description, len(milestones))
	}

	start := strings.ReplaceAll(target.Date, "-", "")
	end := target.ParsedDate().AddDate(0, 0, 1).Format("20060102")

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", target.Name)
	params.Set("dates", fmt.Sprintf("%s/%s", start, end))
	params.Set("details", details)
	params.Set("sf", "true")
	params.Set("output", "xml")

	return calendarHome + "/calendar/render?" + params.Encode(), nil
}
