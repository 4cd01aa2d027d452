// Package persistence saves run progress between sessions.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const progressKey = "progress"

// Progress is the saved state of a run
type Progress struct {
	Level  int `json:"level"`
	Lives  int `json:"lives"`
	Health int `json:"health"`
}

// itemStore is the part of gdata.Manager the store needs
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ProgressStore reads and writes Progress as a JSON item
type ProgressStore struct {
	items itemStore
	log   *zap.Logger
}

// Open opens the platform data directory for appName
func Open(appName string, log *zap.Logger) (*ProgressStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data for %q: %w", appName, err)
	}
	return newProgressStore(m, log), nil
}

func newProgressStore(items itemStore, log *zap.Logger) *ProgressStore {
	return &ProgressStore{items: items, log: log}
}

// Load returns the saved progress, or nil when nothing was saved yet
func (s *ProgressStore) Load() (*Progress, error) {
	data, err := s.items.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &p, nil
}

// Save writes progress
func (s *ProgressStore) Save(p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.items.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	s.log.Debug("progress saved",
		zap.Int("level", p.Level),
		zap.Int("lives", p.Lives),
		zap.Int("health", p.Health))
	return nil
}

// Clear forgets any saved progress
func (s *ProgressStore) Clear() error {
	if err := s.items.SaveItem(progressKey, nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
