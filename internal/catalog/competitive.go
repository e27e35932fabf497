// internal/catalog/competitive.go
package catalog

import (
	"math/rand"
	"sort"
	"strings"

	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/models"
	"launch-assistant/pkg/catalogfile"
)

// DefaultExampleLimit caps how many reference launches a query returns.
const DefaultExampleLimit = 3

// Takeaway is one pattern observed across the matched reference launches.
type Takeaway struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Competitive serves reference launch examples and derived takeaways.
// Loading is fail-soft like the strategy catalog: without data, queries
// return empty results.
type Competitive struct {
	data   *catalogfile.CompetitiveDataset
	logger logger.Logger
}

func LoadCompetitive(path string, log logger.Logger) *Competitive {
	c := &Competitive{logger: log}

	ds, err := catalogfile.LoadCompetitive(path)
	if err != nil {
		log.Warn("Failed to load competitive dataset", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return c
	}
	c.data = ds
	return c
}

// Industries lists the industry keys available in the dataset, sorted.
func (c *Competitive) Industries() []string {
	if c == nil || c.data == nil {
		return nil
	}
	industries := make([]string, 0, len(c.data.Industries))
	for name := range c.data.Industries {
		industries = append(industries, name)
	}
	sort.Strings(industries)
	return industries
}

// SimilarCompanies returns up to limit reference launches matching the given
// filters. Filters narrow by intersection; when nothing matches, the query
// degrades to random examples from the selected industry, then from the whole
// dataset.
func (c *Competitive) SimilarCompanies(launchType models.LaunchType, funding models.FundingStatus, industry string, limit int) []catalogfile.CompanyExample {
	if c == nil || c.data == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultExampleLimit
	}

	matching := map[string]bool{}
	if launchType != "" {
		for _, name := range c.data.LaunchTypes[string(launchType)] {
			matching[name] = true
		}
	}
	if funding != "" {
		byFunding := map[string]bool{}
		for _, name := range c.data.FundingLevels[string(funding)] {
			byFunding[name] = true
		}
		if len(matching) > 0 {
			matching = intersect(matching, byFunding)
		} else {
			matching = byFunding
		}
	}
	if industry != "" {
		if ind, ok := c.data.Industries[industry]; ok {
			byIndustry := map[string]bool{}
			for _, ex := range ind.Examples {
				byIndustry[ex.Company] = true
			}
			if len(matching) > 0 {
				matching = intersect(matching, byIndustry)
			} else {
				matching = byIndustry
			}
		}
	}

	var results []catalogfile.CompanyExample
	for name, ind := range c.data.Industries {
		if industry != "" && name != industry {
			continue
		}
		for _, ex := range ind.Examples {
			if matching[ex.Company] {
				results = append(results, ex)
			}
		}
	}

	if len(results) == 0 && industry != "" {
		if ind, ok := c.data.Industries[industry]; ok {
			results = append(results, ind.Examples...)
			rand.Shuffle(len(results), func(i, j int) {
				results[i], results[j] = results[j], results[i]
			})
			if len(results) > limit {
				results = results[:limit]
			}
		}
	}

	if len(results) == 0 {
		for _, ind := range c.data.Industries {
			if len(ind.Examples) > 0 {
				results = append(results, ind.Examples[rand.Intn(len(ind.Examples))])
			}
		}
	}

	rand.Shuffle(len(results), func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func intersect(a, b map[string]bool) map[string]bool {
	out := map[string]bool{}
	for name := range a {
		if b[name] {
			out[name] = true
		}
	}
	return out
}

// GenerateTakeaways derives pattern takeaways from the matched examples, then
// pads with generic ones so the caller always gets at least three.
func GenerateTakeaways(companies []catalogfile.CompanyExample, launchType models.LaunchType, funding models.FundingStatus) []Takeaway {
	var takeaways []Takeaway

	hasExclusivity := false
	hasContent := false
	hasCommunity := false
	for _, co := range companies {
		approach := strings.ToLower(co.Approach)
		if strings.Contains(approach, "invite-only") || strings.Contains(approach, "waitlist") {
			hasExclusivity = true
		}
		if strings.Contains(approach, "content") {
			hasContent = true
		}
		if strings.Contains(approach, "community") || strings.Contains(strings.ToLower(strings.Join(co.KeyStrategies, " ")), "community") {
			hasCommunity = true
		}
	}
	isBootstrapped := strings.Contains(string(funding), "Bootstrapping")

	if hasExclusivity {
		takeaways = append(takeaways, Takeaway{
			Title:       "Controlled Access Creates Demand",
			Description: "Several successful companies used waitlists or invite systems to create early demand and control quality. Consider an exclusive beta or staged rollout to build anticipation.",
		})
	}
	if hasContent {
		takeaways = append(takeaways, Takeaway{
			Title:       "Content Marketing Builds Authority",
			Description: "Content-first or content-supported launches help establish authority and educate potential customers. Consider how you can use content to showcase your expertise and use case.",
		})
	}
	if hasCommunity {
		takeaways = append(takeaways, Takeaway{
			Title:       "Community-Driven Growth Is Powerful",
			Description: "Building a community around your product creates evangelists and provides valuable feedback. Consider how to cultivate early adopters into a supportive community.",
		})
	}
	if isBootstrapped {
		takeaways = append(takeaways, Takeaway{
			Title:       "Resource Constraints Can Drive Focus",
			Description: "Bootstrapped companies often succeed through extreme focus on a core value proposition. Consider how to create maximum impact with minimal resources.",
		})
	}

	switch {
	case strings.Contains(string(launchType), "New Startup/Product Launch"):
		takeaways = append(takeaways, Takeaway{
			Title:       "Simplicity Wins at Launch",
			Description: "Successful product launches often start with a focused offering rather than numerous features. Consider launching with your 'hero' feature or product that clearly demonstrates your value.",
		})
	case strings.Contains(string(launchType), "Brand Repositioning"):
		takeaways = append(takeaways, Takeaway{
			Title:       "Narrative Is Critical for Repositioning",
			Description: "Successful rebrand launches clearly articulate the 'why' behind the change. Ensure your narrative connects past to future while highlighting new value.",
		})
	case strings.Contains(string(launchType), "Funding Announcement"):
		takeaways = append(takeaways, Takeaway{
			Title:       "Connect Funding to Customer Benefit",
			Description: "The most effective funding announcements tie the investment to specific customer benefits. Frame your funding in terms of how it enables you to better serve customers.",
		})
	case strings.Contains(string(launchType), "Partnership"):
		takeaways = append(takeaways, Takeaway{
			Title:       "Mutual Value Must Be Clear",
			Description: "Successful partnership launches clearly articulate the value to all parties, including customers. Ensure your partnership story explains benefits for everyone involved.",
		})
	}

	generic := []Takeaway{
		{
			Title:       "Timing Can Be As Important As Execution",
			Description: "Many successful launches benefited from timing with market trends or shifts. Consider how your launch aligns with current market conditions and adjust messaging accordingly.",
		},
		{
			Title:       "Product Experience Drives Word-of-Mouth",
			Description: "The initial user experience often determines whether users become advocates. Invest in creating memorable moments in your onboarding and core workflows.",
		},
		{
			Title:       "Clear Positioning Cuts Through Noise",
			Description: "Companies that articulate a clear, differentiated position tend to gain traction faster. Ensure your launch clearly communicates what makes your offering unique.",
		},
	}
	for _, g := range generic {
		if len(takeaways) >= 3 {
			break
		}
		takeaways = append(takeaways, g)
	}

	return takeaways
}
