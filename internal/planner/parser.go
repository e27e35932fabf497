// internal/planner/parser.go
package planner

import (
	"regexp"
	"strings"

	"launch-assistant/internal/models"
)

// AIResult holds the sections recovered from a model response. Any field may
// be empty when the corresponding section was missing or unparseable.
type AIResult struct {
	MessagingAdvice string
	Strategies      []models.PlanItem
	RawStrategies   []string
	NextSteps       []string
}

var (
	numberedItem = regexp.MustCompile(`^\s*(?:\d+[.)]|[-•*])\s*(.+)$`)

	adviceHeader     = regexp.MustCompile(`(?i)^messaging advice\s*:?\s*(.*)$`)
	strategiesHeader = regexp.MustCompile(`(?i)^recommended strategies\s*:?\s*$`)
	nextStepsHeader  = regexp.MustCompile(`(?i)^next steps\s*:?\s*$`)
)

// ParseResponse locates the three labeled sections in free model text.
// Numbered or bulleted lines become list items; prose lines inside the advice
// section accumulate into the paragraph. Unrecognized leading text is ignored.
func ParseResponse(text string) *AIResult {
	result := &AIResult{}

	const (
		sectionNone = iota
		sectionAdvice
		sectionStrategies
		sectionNextSteps
	)
	section := sectionNone

	var advice []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := adviceHeader.FindStringSubmatch(line); m != nil {
			section = sectionAdvice
			if rest := strings.TrimSpace(m[1]); rest != "" {
				advice = append(advice, rest)
			}
			continue
		}
		if strategiesHeader.MatchString(line) {
			section = sectionStrategies
			continue
		}
		if nextStepsHeader.MatchString(line) {
			section = sectionNextSteps
			continue
		}

		switch section {
		case sectionAdvice:
			advice = append(advice, line)
		case sectionStrategies:
			if m := numberedItem.FindStringSubmatch(line); m != nil {
				raw := strings.TrimSpace(m[1])
				result.RawStrategies = append(result.RawStrategies, raw)
				result.Strategies = append(result.Strategies, models.NewPlanItem(raw))
			}
		case sectionNextSteps:
			if m := numberedItem.FindStringSubmatch(line); m != nil {
				result.NextSteps = append(result.NextSteps, strings.TrimSpace(m[1]))
			}
		}
	}

	result.MessagingAdvice = strings.Join(advice, " ")
	return result
}
