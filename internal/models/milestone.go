package models

import "time"

// MilestoneType buckets a milestone relative to launch day.
type MilestoneType string

const (
	MilestonePreLaunch  MilestoneType = "pre-launch"
	MilestoneLaunch     MilestoneType = "launch"
	MilestonePostLaunch MilestoneType = "post-launch"
)

// DateLayout is the wire and storage format for milestone dates.
const DateLayout = "2006-01-02"

// Milestone is a single dated entry in a founder's launch calendar.
// Milestones are keyed per owner email; ID is unique within an owner's list.
type Milestone struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Date        string        `json:"date"` // DateLayout
	Description string        `json:"description,omitempty"`
	Type        MilestoneType `json:"type"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ParsedDate returns the milestone date as a time.Time, or the zero time if
// the stored value is malformed.
func (m Milestone) ParsedDate() time.Time {
	t, err := time.Parse(DateLayout, m.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SameEntry reports whether two milestones describe the same calendar entry,
// ignoring ID and timestamps.
func (m Milestone) SameEntry(other Milestone) bool {
	return m.Name == other.Name && m.Date == other.Date && m.Description == other.Description
}
