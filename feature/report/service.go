package report

import (
	"context"

	"scene-audit/feature/report/models"

	"go.uber.org/zap"
)

// Service exposes persisted audit reports to the HTTP layer.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new report service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Latest returns the most recent run.
func (s *Service) Latest(ctx context.Context) (*models.Run, error) {
	return s.store.LatestRun(ctx)
}

// Get returns one run by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Run, error) {
	return s.store.GetRun(ctx, id)
}

// List returns run summaries, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]models.Run, error) {
	return s.store.ListRuns(ctx, limit)
}
