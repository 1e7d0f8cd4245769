package integrity

import (
	"enum-registry/core/registry"
	"enum-registry/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	registry *registry.Registry
	db       *gorm.DB
	schema   string
	logger   *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(reg *registry.Registry, db *gorm.DB, schema string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		registry: reg,
		db:       db,
		schema:   schema,
		logger:   logger,
	}
}

// CheckSchema verifies the lookup table schema.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.schema)
}

// CheckCatalog reports on the loaded registry.
func (s *Service) CheckCatalog() *checks.CatalogReport {
	return checks.CheckCatalog(s.registry)
}
