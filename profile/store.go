package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/lixenwraith/pulse-runner/core"
)

// Store persists the one scalar this core keeps across sessions: the
// skill modifier, keyed per player profile. One small JSON file per
// profile under a base directory.
type Store struct {
	basePath string
}

// NewStore creates a store rooted at basePath
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// FilePath returns the path for a profile's save file
func (s *Store) FilePath(profileID string) string {
	return filepath.Join(s.basePath, profileID+".json")
}

type profileDTO struct {
	Skill float64 `json:"skill"`
}

// LoadSkill reads the persisted skill modifier. A missing file is not
// an error and yields fallback; a corrupt file or an out-of-range
// value is surfaced explicitly rather than silently defaulted.
func (s *Store) LoadSkill(profileID string, fallback float64) (float64, error) {
	data, err := os.ReadFile(s.FilePath(profileID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, nil
		}
		return fallback, err
	}

	var dto profileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return fallback, fmt.Errorf("%w: %v", core.ErrProfileCorrupt, err)
	}

	if math.IsNaN(dto.Skill) || dto.Skill < 0 || dto.Skill > 1 {
		return fallback, fmt.Errorf("%w: skill %v out of range", core.ErrProfileCorrupt, dto.Skill)
	}

	return dto.Skill, nil
}

// SaveSkill writes the skill modifier for a profile
func (s *Store) SaveSkill(profileID string, skill float64) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(profileDTO{Skill: skill})
	if err != nil {
		return err
	}

	return os.WriteFile(s.FilePath(profileID), data, 0644)
}
