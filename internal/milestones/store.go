// internal/milestones/store.go
package milestones

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/models"
)

// Store persists per-owner milestone sequences. Load on an unknown owner
// returns an empty slice, never an error.
type Store interface {
	Load(ctx context.Context, owner string) ([]models.Milestone, error)
	Save(ctx context.Context, owner string, milestones []models.Milestone) error
}

// FileStore keeps every owner's milestones in a single JSON document on disk,
// keyed by owner email. Reads are fail-soft: a missing or corrupt file is
// treated as an empty store. Writes rewrite the whole document through a temp
// file rename so a crash mid-write never leaves a torn file.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, logger: log}
}

func (s *FileStore) Load(ctx context.Context, owner string) ([]models.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.readAll()
	return all[owner], nil
}

func (s *FileStore) Save(ctx context.Context, owner string, milestones []models.Milestone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.readAll()
	if len(milestones) == 0 {
		delete(all, owner)
	} else {
		all[owner] = milestones
	}
	return s.writeAll(all)
}

func (s *FileStore) readAll() map[string][]models.Milestone {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read milestone file, treating as empty", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return map[string][]models.Milestone{}
	}

	var all map[string][]models.Milestone
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Failed to parse milestone file, treating as empty", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return map[string][]models.Milestone{}
	}
	if all == nil {
		all = map[string][]models.Milestone{}
	}
	return all
}

func (s *FileStore) writeAll(all map[string][]models.Milestone) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(all)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
