package report

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the report store, service and handler into the feature
// loader.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeature creates the report feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{db: db, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "report" }

// IsEnabled reports whether the feature can load. Reports require a
// database connection.
func (f *Feature) IsEnabled() bool { return f.db != nil }

// Load migrates the schema and registers the report routes.
func (f *Feature) Load(app fiber.Router) error {
	store := NewStore(f.db)
	if err := store.Migrate(); err != nil {
		return err
	}
	handler := NewHandler(NewService(store, f.logger))
	handler.RegisterRoutes(app)
	return nil
}
