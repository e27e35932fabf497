// internal/leads/store_test.go
package leads

import (
	"context"
	"testing"
	"time"

	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestAnswers() *models.FormAnswers {
	return &models.FormAnswers{
		FirstName:          "Ana",
		StartupName:        "Acme",
		Email:              "ana@acme.io",
		MessagingTested:    models.MessagingUntested,
		LaunchType:         models.LaunchNewProduct,
		FundingStatus:      models.FundingBootstrapped,
		PrimaryGoal:        models.GoalUsers,
		AudienceReadiness:  models.AudienceScratch,
		PostLaunchPriority: models.PriorityScaling,
	}
}

func createTestPlan() *models.Plan {
	return &models.Plan{
		MessagingAdvice: "Validate your messaging first.",
		Strategies: []models.PlanItem{
			{Description: "Focus on founder-led storytelling"},
		},
		NextSteps: []string{"1. Document what worked"},
	}
}

// ==========================
// Record Tests
// ==========================

func TestStore_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO leads`).
		WithArgs("Ana", "Acme", "ana@acme.io", "New Startup/Product Launch",
			"Bootstrapping (No external funding)", "Get Users or Customers",
			"Validate your messaging first.",
			[]byte(`[{"title":"","description":"Focus on founder-led storytelling"}]`),
			[]byte(`["1. Document what worked"]`),
			sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	store := NewStore(db, logger.NewTestLogger(t))
	id, err := store.Record(context.Background(), createTestAnswers(), createTestPlan())

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_RecordInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO leads`).
		WillReturnError(assert.AnError)

	store := NewStore(db, logger.NewTestLogger(t))
	_, err = store.Record(context.Background(), createTestAnswers(), createTestPlan())

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeLeadInsertFailed, stderrors.CodeOf(err))
}

func TestStore_NilStoreIsNoOp(t *testing.T) {
	var store *Store

	id, err := store.Record(context.Background(), createTestAnswers(), nil)

	require.NoError(t, err)
	assert.Zero(t, id)
}

// ==========================
// Recent Tests
// ==========================

func TestStore_Recent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "first_name", "startup_name", "email", "launch_type", "funding_status", "primary_goal", "created_at"}).
		AddRow(int64(2), "Ben", "Bento", "ben@bento.io", "Funding Announcement", "Raised under $1M", "Attract Investors", now).
		AddRow(int64(1), "Ana", "Acme", "ana@acme.io", "New Startup/Product Launch", "Bootstrapping (No external funding)", "Get Users or Customers", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, first_name`).
		WithArgs(10).
		WillReturnRows(rows)

	store := NewStore(db, logger.NewTestLogger(t))
	leads, err := store.Recent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Ben", leads[0].FirstName)
	assert.Equal(t, "ana@acme.io", leads[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
