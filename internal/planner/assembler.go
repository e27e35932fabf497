// internal/planner/assembler.go
package planner

import (
	"context"
	"time"

	"launch-assistant/internal/catalog"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/common/metrics"
	"launch-assistant/internal/common/observability"
	"launch-assistant/internal/models"
)

// Assembler produces a complete launch plan for a set of form answers by
// walking the resolution chain tier by tier: external catalog, built-in
// tables, AI backend, generic defaults. Strategies and next steps resolve
// independently; a miss on one never forces the other down a tier.
type Assembler struct {
	external *catalog.External
	ai       *AIClient
	obs      *observability.Observability
	logger   logger.Logger
}

func NewAssembler(external *catalog.External, ai *AIClient, obs *observability.Observability, log logger.Logger) *Assembler {
	return &Assembler{
		external: external,
		ai:       ai,
		obs:      obs,
		logger:   log,
	}
}

// Generate assembles the plan. It never fails outright: every section has the
// generic tier as a safety net, so a valid answer set always yields a
// non-empty plan.
func (a *Assembler) Generate(ctx context.Context, answers *models.FormAnswers) (*models.Plan, error) {
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	plan := &models.Plan{
		Summary: models.LaunchSummary{
			FirstName:          answers.FirstName,
			StartupName:        answers.StartupName,
			LaunchType:         string(answers.LaunchType),
			FundingStatus:      string(answers.FundingStatus),
			PrimaryGoal:        string(answers.PrimaryGoal),
			AudienceReadiness:  string(answers.AudienceReadiness),
			PostLaunchPriority: string(answers.PostLaunchPriority),
		},
		MessagingAdvice: catalog.MessagingAdvice(answers.MessagingTested),
	}

	strategies, strategySource := a.resolveStrategies(answers)
	steps, stepSource := a.resolveNextSteps(answers)

	// The AI tier synthesizes all sections in one call, so run it once if
	// either section is still unresolved.
	if (strategies == nil || steps == nil) && a.ai.Configured() {
		result, err := a.ai.Generate(ctx, answers)
		if err != nil {
			a.logger.Warn("AI plan generation failed, using generic tier", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			if strategies == nil && len(result.Strategies) > 0 {
				strategies = result.Strategies
				strategySource = models.SourceAI
			}
			if steps == nil && len(result.NextSteps) > 0 {
				steps = result.NextSteps
				stepSource = models.SourceAI
			}
			if result.MessagingAdvice != "" {
				plan.MessagingAdvice = result.MessagingAdvice
			}
		}
	}

	if strategies == nil {
		strategies = asPlanItems(catalog.GenericStrategies)
		strategySource = models.SourceGeneric
	}
	if steps == nil {
		steps = append([]string(nil), catalog.GenericNextSteps...)
		stepSource = models.SourceGeneric
	}

	plan.Strategies = fillStrategies(strategies)
	plan.NextSteps = fillNextSteps(steps)
	plan.StrategySource = strategySource
	plan.NextStepSource = stepSource

	elapsed := time.Since(start)
	metrics.PlansGenerated.WithLabelValues(string(strategySource)).Inc()
	metrics.PlanGenerationDuration.Observe(elapsed.Seconds())
	if a.obs != nil {
		a.obs.RecordPlanGenerated(ctx, string(strategySource))
		a.obs.RecordPlanDuration(ctx, elapsed, string(strategySource))
	}

	a.logger.Info("Launch plan assembled", map[string]interface{}{
		"startup":        answers.StartupName,
		"strategySource": strategySource,
		"nextStepSource": stepSource,
		"durationMs":     elapsed.Milliseconds(),
	})

	return plan, nil
}

func (a *Assembler) resolveStrategies(answers *models.FormAnswers) ([]models.PlanItem, models.PlanSource) {
	if lines, ok := a.external.Strategies(answers.LaunchType, answers.FundingStatus, answers.PrimaryGoal); ok {
		return asPlanItems(lines), models.SourceCatalog
	}
	if lines, ok := catalog.StaticStrategies(answers.LaunchType, answers.FundingStatus, answers.PrimaryGoal); ok {
		return asPlanItems(lines), models.SourceStatic
	}
	return nil, ""
}

func (a *Assembler) resolveNextSteps(answers *models.FormAnswers) ([]string, models.PlanSource) {
	if lines, ok := a.external.NextSteps(answers.FundingStatus, answers.AudienceReadiness, answers.PostLaunchPriority); ok {
		return append([]string(nil), lines...), models.SourceCatalog
	}
	if lines, ok := catalog.StaticNextSteps(answers.FundingStatus, answers.AudienceReadiness, answers.PostLaunchPriority); ok {
		return append([]string(nil), lines...), models.SourceStatic
	}
	return nil, ""
}

// Each section carries exactly three entries. An AI response that parsed to
// fewer items, or a sparse external catalog entry, is padded from the generic
// list; anything longer is truncated.
const sectionSize = 3

func fillStrategies(items []models.PlanItem) []models.PlanItem {
	for _, line := range catalog.GenericStrategies {
		if len(items) >= sectionSize {
			break
		}
		items = append(items, models.PlanItem{Description: line})
	}
	return items[:sectionSize]
}

func fillNextSteps(steps []string) []string {
	for _, line := range catalog.GenericNextSteps {
		if len(steps) >= sectionSize {
			break
		}
		steps = append(steps, line)
	}
	return steps[:sectionSize]
}

// Table-sourced lines carry no title split; the whole line is the
// description.
func asPlanItems(lines []string) []models.PlanItem {
	items := make([]models.PlanItem, len(lines))
	for i, line := range lines {
		items[i] = models.PlanItem{Description: line}
	}
	return items
}
