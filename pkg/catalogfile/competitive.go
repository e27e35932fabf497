// pkg/catalogfile/competitive.go
package catalogfile

import (
	"encoding/json"
	"os"
)

// CompetitiveDataset is the on-disk shape of the reference launch dataset.
// Companies are indexed three ways: per industry with full detail, and by
// launch type and funding level as plain name lists.
type CompetitiveDataset struct {
	Industries    map[string]IndustryData `json:"industries"`
	LaunchTypes   map[string][]string     `json:"launch_types"`
	FundingLevels map[string][]string     `json:"funding_levels"`
}

type IndustryData struct {
	Examples []CompanyExample `json:"examples"`
}

// CompanyExample is one reference launch with its strategy detail.
type CompanyExample struct {
	Company              string   `json:"company"`
	LaunchYear           int      `json:"launch_year"`
	Approach             string   `json:"approach"`
	FundingAtLaunch      string   `json:"funding_at_launch"`
	KeyStrategies        []string `json:"key_strategies"`
	Results              string   `json:"results"`
	NotableTactics       string   `json:"notable_tactics"`
	RetrospectiveInsight string   `json:"retrospective_insight"`
}

func LoadCompetitive(path string) (*CompetitiveDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds CompetitiveDataset
	err = json.Unmarshal(data, &ds)
	return &ds, err
}
