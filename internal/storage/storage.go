package storage

import (
	"unitlite/internal/config"
	"unitlite/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer).
type Storage interface {
	Save(summary domain.RunSummary, details []domain.FailureDetail) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolve-state updates).
	SaveOutput(output *domain.RunOutput) error
}

// ForConfig selects a storage backend: MySQL when a DSN is configured,
// the JSON file otherwise.
func ForConfig(cfg *config.Config) Storage {
	if cfg.DatabaseDSN != "" {
		return NewMySQLStorage(cfg.DatabaseDSN)
	}
	return NewJSONStorage(cfg)
}
