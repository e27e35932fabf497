// pkg/catalogfile/schema.go
package catalogfile

// StrategyTable is a three-level lookup: launch type -> funding status ->
// primary goal -> recommendation lines.
type StrategyTable map[string]map[string]map[string][]string

// NextStepTable is a three-level lookup: funding status -> audience
// readiness -> post-launch priority -> numbered step lines.
type NextStepTable map[string]map[string]map[string][]string

// StrategyCatalog is the on-disk shape of an external strategies file. Either
// table may be absent; lookups simply miss.
type StrategyCatalog struct {
	Version          string        `json:"version,omitempty"`
	LastUpdated      string        `json:"lastUpdated,omitempty"`
	LaunchStrategies StrategyTable `json:"launch_strategies,omitempty"`
	NextSteps        NextStepTable `json:"next_steps,omitempty"`
}

// Lookup returns the recommendation lines for the exact key triple, or false
// when any level is missing.
func (t StrategyTable) Lookup(a, b, c string) ([]string, bool) {
	l2, ok := t[a]
	if !ok {
		return nil, false
	}
	l3, ok := l2[b]
	if !ok {
		return nil, false
	}
	lines, ok := l3[c]
	if !ok || len(lines) == 0 {
		return nil, false
	}
	return lines, true
}

// Lookup returns the step lines for the exact key triple, or false when any
// level is missing.
func (t NextStepTable) Lookup(a, b, c string) ([]string, bool) {
	return StrategyTable(t).Lookup(a, b, c)
}
