// internal/catalog/external.go
package catalog

import (
	"os"

	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/common/validation"
	"launch-assistant/internal/models"
	"launch-assistant/pkg/catalogfile"
)

// catalogSchema validates the external strategies file. Both tables are
// optional; present tables must be string-keyed nests ending in string arrays.
const catalogSchema = `{
	"type": "object",
	"properties": {
		"version": {"type": "string"},
		"lastUpdated": {"type": "string"},
		"launch_strategies": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"additionalProperties": {
					"type": "object",
					"additionalProperties": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		},
		"next_steps": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"additionalProperties": {
					"type": "object",
					"additionalProperties": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		}
	}
}`

// External is the file-backed strategy catalog, the first tier of the
// resolution chain. A nil or empty External simply never resolves.
type External struct {
	catalog *catalogfile.StrategyCatalog
	logger  logger.Logger
}

// LoadExternal reads and validates the external catalog. Load failures are
// fail-soft: the error is logged and an empty catalog is returned so the
// resolution chain continues on the built-in tiers.
func LoadExternal(path string, log logger.Logger) *External {
	ext := &External{logger: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Failed to read strategy catalog", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
		return ext
	}

	result, err := validation.ValidateJSONDocument(catalogSchema, data)
	if err != nil {
		log.Warn("Strategy catalog schema check failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return ext
	}
	if !result.Valid {
		log.Warn("Strategy catalog rejected by schema", map[string]interface{}{
			"path":   path,
			"errors": result.GetErrorMessages(),
		})
		return ext
	}

	cat, err := catalogfile.ParseCatalog(data)
	if err != nil {
		log.Warn("Failed to parse strategy catalog", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return ext
	}

	ext.catalog = cat
	log.Info("Loaded external strategy catalog", map[string]interface{}{
		"path":    path,
		"version": cat.Version,
	})
	return ext
}

// Strategies resolves the launch-strategy triple from the external file.
func (e *External) Strategies(launchType models.LaunchType, funding models.FundingStatus, goal models.PrimaryGoal) ([]string, bool) {
	if e == nil || e.catalog == nil || e.catalog.LaunchStrategies == nil {
		return nil, false
	}
	return e.catalog.LaunchStrategies.Lookup(string(launchType), string(funding), string(goal))
}

// NextSteps resolves the next-step triple from the external file.
func (e *External) NextSteps(funding models.FundingStatus, audience models.AudienceReadiness, priority models.PostLaunchPriority) ([]string, bool) {
	if e == nil || e.catalog == nil || e.catalog.NextSteps == nil {
		return nil, false
	}
	return e.catalog.NextSteps.Lookup(string(funding), string(audience), string(priority))
}
