package report

import (
	"context"
	"encoding/json"
	"fmt"

	"scene-audit/core/audit"
	"scene-audit/feature/report/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store persists audit runs and their findings.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the report tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.Run{}, &models.Finding{})
}

// SaveRun persists one run's totals and records, returning the new run's
// ID.
func (s *Store) SaveRun(ctx context.Context, stats audit.Stats, records []audit.Record) (string, error) {
	run := models.Run{
		ID:        uuid.NewString(),
		Objects:   stats.Objects,
		Prefabs:   stats.Prefabs,
		Materials: stats.Materials,
		Models:    stats.Models,
		Shaders:   stats.Shaders,
		Textures:  stats.Textures,
	}

	for _, record := range records {
		properties, err := json.Marshal(record.Properties)
		if err != nil {
			return "", fmt.Errorf("failed to encode properties for %s: %w", record.Subject, err)
		}
		run.Findings = append(run.Findings, models.Finding{
			RunID:      run.ID,
			Descriptor: record.Descriptor,
			Subject:    record.Subject,
			Category:   string(record.Category),
			Path:       record.Location.Path,
			Line:       record.Location.Line,
			Properties: string(properties),
		})
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return run.ID, nil
}

// GetRun loads one run with its findings.
func (s *Store) GetRun(ctx context.Context, id string) (*models.Run, error) {
	var run models.Run
	err := s.db.WithContext(ctx).Preload("Findings").First(&run, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}

// LatestRun loads the most recent run with its findings.
func (s *Store) LatestRun(ctx context.Context) (*models.Run, error) {
	var run models.Run
	err := s.db.WithContext(ctx).Preload("Findings").Order("created_at DESC").First(&run).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}
	return &run, nil
}

// ListRuns returns run summaries (no findings), newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []models.Run
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
