// internal/leads/store.go
package leads

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/common/metrics"
	"launch-assistant/internal/models"
)

// Lead is one captured questionnaire submission.
type Lead struct {
	ID            int64
	FirstName     string
	StartupName   string
	Email         string
	LaunchType    string
	FundingStatus string
	PrimaryGoal   string
	CreatedAt     time.Time
}

// Store records leads in PostgreSQL. A nil Store (no database configured)
// turns Record into a no-op so the flow works without persistence.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{db: db, logger: log}
}

const insertLeadQuery = `
	INSERT INTO leads (first_name, startup_name, email, launch_type, funding_status, primary_goal, messaging_advice, strategies, next_steps, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`

// Record inserts a lead row from the submitted answers and the generated
// plan, and returns its id. Strategy and next-step lists are stored as JSON
// columns.
func (s *Store) Record(ctx context.Context, answers *models.FormAnswers, plan *models.Plan) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}

	var advice string
	var strategies, nextSteps []byte
	if plan != nil {
		advice = plan.MessagingAdvice
		strategies, _ = json.Marshal(plan.Strategies)
		nextSteps, _ = json.Marshal(plan.NextSteps)
	} else {
		strategies, nextSteps = []byte("[]"), []byte("[]")
	}

	var id int64
	err := s.db.QueryRowContext(ctx, insertLeadQuery,
		answers.FirstName,
		answers.StartupName,
		answers.Email,
		string(answers.LaunchType),
		string(answers.FundingStatus),
		string(answers.PrimaryGoal),
		advice,
		strategies,
		nextSteps,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, stderrors.NewLeadInsertFailedError(err)
	}

	metrics.LeadsRecorded.Inc()
	s.logger.Info("Lead recorded", map[string]interface{}{
		"leadId": id,
		"email":  answers.Email,
	})
	return id, nil
}

const recentLeadsQuery = `
	SELECT id, first_name, startup_name, email, launch_type, funding_status, primary_goal, created_at
	FROM leads
	ORDER BY created_at DESC
	LIMIT $1`

// Recent returns the newest leads, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Lead, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, recentLeadsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.FirstName, &l.StartupName, &l.Email, &l.LaunchType, &l.FundingStatus, &l.PrimaryGoal, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
