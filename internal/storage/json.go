package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"unitlite/internal/config"
	"unitlite/internal/domain"
)

// JSONStorage stores run results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save writes the run summary and failure details to the configured JSON file.
func (s *JSONStorage) Save(summary domain.RunSummary, details []domain.FailureDetail) error {
	return s.SaveOutput(buildOutput(summary, details))
}

// Load reads the last run results from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// buildOutput assembles the persisted structure from a run's final state
func buildOutput(summary domain.RunSummary, details []domain.FailureDetail) *domain.RunOutput {
	return &domain.RunOutput{
		Meta: domain.RunMeta{
			Tests:           summary.Tests,
			Failures:        summary.Failures,
			Errors:          summary.Errors,
			Duration:        summary.Duration.String(),
			DurationSeconds: summary.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
}
