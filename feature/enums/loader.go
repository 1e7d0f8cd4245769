package enums

import (
	"enum-registry/core/reconcile"
	"enum-registry/core/registry"
	"enum-registry/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the enums feature. engine may be nil.
func NewFeature(reg *registry.Registry, engine *reconcile.Engine, serverCfg server.Config, syncCfg reconcile.Config, logger *zap.Logger) *Feature {
	svc := NewService(reg, engine, serverCfg, syncCfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "enums"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for background passes.
func (f *Feature) Service() *Service {
	return f.service
}
