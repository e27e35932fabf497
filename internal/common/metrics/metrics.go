// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launch_plans_generated_total",
			Help: "Total number of launch plans generated, by resolution source",
		},
		[]string{"source"},
	)

	PlanGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "launch_plan_generation_duration_seconds",
			Help: "Duration of plan generation in seconds",
		},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_emails_sent_total",
			Help: "Total number of plan emails attempted, by status and provider",
		},
		[]string{"status", "provider"},
	)

	MilestonesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "milestones_created_total",
			Help: "Total number of milestones persisted",
		},
	)

	MilestonesDeduped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "milestones_deduped_total",
			Help: "Total number of duplicate milestones removed by dedupe sweeps",
		},
	)

	CRMSyncFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_sync_failures_total",
			Help: "Total number of failed CRM contact syncs",
		},
	)

	LeadsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_recorded_total",
			Help: "Total number of lead rows written",
		},
	)
)
