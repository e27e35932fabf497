// internal/planner/parser_test.go
package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_ThreeLabeledSections(t *testing.T) {
	text := `Messaging Advice: Your messaging needs real-world validation. Put a landing page in front of ten target customers this week.

Recommended Strategies:
1. Launch an invite-only beta. Give your first 50 users a founding-member badge.
2. Record a weekly build-in-public video series
3. Partner with two adjacent newsletters for a shared giveaway

Next Steps:
1. Track which channel drove your first 100 signups
2. Interview five churned users within two weeks
3. Publish a launch retrospective to your audience`

	result := ParseResponse(text)

	assert.Contains(t, result.MessagingAdvice, "real-world validation")

	require.Len(t, result.Strategies, 3)
	assert.Equal(t, "Launch an invite-only beta", result.Strategies[0].Title)
	assert.Equal(t, "Give your first 50 users a founding-member badge.", result.Strategies[0].Description)
	assert.Equal(t, "Record a weekly build-in-public video series", result.Strategies[1].Title)
	assert.Empty(t, result.Strategies[1].Description)

	require.Len(t, result.NextSteps, 3)
	assert.Equal(t, "Track which channel drove your first 100 signups", result.NextSteps[0])
}

func TestParseResponse_MultilineAdviceParagraph(t *testing.T) {
	text := `Messaging Advice:
First sentence of advice.
Second sentence of advice.

Recommended Strategies:
1. One strategy`

	result := ParseResponse(text)

	assert.Equal(t, "First sentence of advice. Second sentence of advice.", result.MessagingAdvice)
	require.Len(t, result.Strategies, 1)
}

func TestParseResponse_BulletedItems(t *testing.T) {
	text := `Recommended Strategies:
- First bulleted strategy
• Second bulleted strategy
* Third bulleted strategy`

	result := ParseResponse(text)

	require.Len(t, result.Strategies, 3)
	assert.Equal(t, []string{
		"First bulleted strategy",
		"Second bulleted strategy",
		"Third bulleted strategy",
	}, result.RawStrategies)
}

func TestParseResponse_MissingSectionsLeftEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty response", text: ""},
		{name: "prose without headers", text: "Here is a plan you might like.\nGood luck with the launch!"},
		{name: "only next steps", text: "Next Steps:\n1. Do the thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseResponse(tt.text)
			assert.Empty(t, result.Strategies)
			if tt.name != "only next steps" {
				assert.Empty(t, result.NextSteps)
				assert.Empty(t, result.MessagingAdvice)
			}
		})
	}
}

func TestParseResponse_IgnoresPreamble(t *testing.T) {
	text := `Sure! Here is your personalized plan.

Recommended Strategies:
1. Only real strategy`

	result := ParseResponse(text)

	assert.Empty(t, result.MessagingAdvice)
	require.Len(t, result.Strategies, 1)
	assert.Equal(t, "Only real strategy", result.RawStrategies[0])
}

func TestParseResponse_CaseInsensitiveHeaders(t *testing.T) {
	text := `MESSAGING ADVICE: Loud advice.
recommended strategies:
1. quiet strategy`

	result := ParseResponse(text)

	assert.Equal(t, "Loud advice.", result.MessagingAdvice)
	require.Len(t, result.Strategies, 1)
}
