// internal/milestones/engine.go
package milestones

import (
	"context"
	"sync"
	"time"

	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/common/metrics"
	"launch-assistant/internal/models"

	"github.com/google/uuid"
)

// Engine owns the milestone calendar for every owner. All mutations go
// through a per-owner lock so two sessions for the same email cannot lose
// each other's writes on the read-modify-write cycle.
type Engine struct {
	store  Store
	locks  sync.Map // owner -> *sync.Mutex
	logger logger.Logger
	now    func() time.Time
}

func NewEngine(store Store, log logger.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: log,
		now:    time.Now,
	}
}

func (e *Engine) lockFor(owner string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(owner, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Add persists a milestone for the owner. An exact duplicate (same name,
// date, description) coalesces into the existing record and its id is
// returned instead of creating a second entry.
func (e *Engine) Add(ctx context.Context, owner, name, date, description string, mtype models.MilestoneType) (string, error) {
	mu := e.lockFor(owner)
	mu.Lock()
	defer mu.Unlock()

	existing, err := e.store.Load(ctx, owner)
	if err != nil {
		return "", stderrors.NewMilestoneStoreFailedError(err)
	}

	candidate := models.Milestone{
		Name:        name,
		Date:        date,
		Description: description,
	}
	for _, m := range existing {
		if m.SameEntry(candidate) {
			return m.ID, nil
		}
	}

	milestone := models.Milestone{
		ID:          uuid.New().String(),
		Name:        name,
		Date:        date,
		Description: description,
		Type:        mtype,
		CreatedAt:   e.now(),
	}
	if err := e.store.Save(ctx, owner, append(existing, milestone)); err != nil {
		return "", stderrors.NewMilestoneStoreFailedError(err)
	}

	metrics.MilestonesCreated.Inc()
	e.logger.Info("Milestone added", map[string]interface{}{
		"owner":       owner,
		"milestoneId": milestone.ID,
		"date":        date,
	})
	return milestone.ID, nil
}

// List returns the owner's milestones in stored insertion order. An unknown
// owner gets an empty list.
func (e *Engine) List(ctx context.Context, owner string) ([]models.Milestone, error) {
	milestones, err := e.store.Load(ctx, owner)
	if err != nil {
		return nil, stderrors.NewMilestoneStoreFailedError(err)
	}
	return milestones, nil
}

// Delete removes one milestone by id.
func (e *Engine) Delete(ctx context.Context, owner, id string) error {
	mu := e.lockFor(owner)
	mu.Lock()
	defer mu.Unlock()

	existing, err := e.store.Load(ctx, owner)
	if err != nil {
		return stderrors.NewMilestoneStoreFailedError(err)
	}

	kept := existing[:0:0]
	found := false
	for _, m := range existing {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return stderrors.NewMilestoneNotFoundError(id)
	}

	if err := e.store.Save(ctx, owner, kept); err != nil {
		return stderrors.NewMilestoneStoreFailedError(err)
	}
	return nil
}

// Reset clears the owner's entire collection.
func (e *Engine) Reset(ctx context.Context, owner string) error {
	mu := e.lockFor(owner)
	mu.Lock()
	defer mu.Unlock()

	if err := e.store.Save(ctx, owner, nil); err != nil {
		return stderrors.NewMilestoneStoreFailedError(err)
	}
	return nil
}

// Dedupe removes later occurrences of (name, date, description) collisions,
// keeping the first of each group, and returns how many records were removed.
// A clean collection returns 0. Used as a self-healing sweep before display.
func (e *Engine) Dedupe(ctx context.Context, owner string) (int, error) {
	mu := e.lockFor(owner)
	mu.Lock()
	defer mu.Unlock()

	existing, err := e.store.Load(ctx, owner)
	if err != nil {
		return 0, stderrors.NewMilestoneStoreFailedError(err)
	}

	kept := existing[:0:0]
	removed := 0
	for _, m := range existing {
		dup := false
		for _, k := range kept {
			if k.SameEntry(m) {
				dup = true
				break
			}
		}
		if dup {
			removed++
			continue
		}
		kept = append(kept, m)
	}

	if removed > 0 {
		if err := e.store.Save(ctx, owner, kept); err != nil {
			return 0, stderrors.NewMilestoneStoreFailedError(err)
		}
		metrics.MilestonesDeduped.Add(float64(removed))
		e.logger.Info("Duplicate milestones removed", map[string]interface{}{
			"owner":   owner,
			"removed": removed,
		})
	}
	return removed, nil
}
