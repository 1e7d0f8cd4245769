package cmd

import (
	"context"
	"fmt"

	"enum-registry/core/catalog"
	"enum-registry/core/config"
	"enum-registry/core/database"
	"enum-registry/core/logger"
	"enum-registry/core/lookup"
	"enum-registry/core/reconcile"
	"enum-registry/core/registry"
	"enum-registry/core/storage"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the components every command builds from configuration.
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *registry.Registry
	db       *gorm.DB
	store    *lookup.Store
	engine   *reconcile.Engine
}

// newRuntime loads configuration, the catalog and, when requireDB or the
// database is reachable, the lookup store and reconciliation engine.
// overrides run on the loaded configuration before anything is built.
func newRuntime(ctx context.Context, requireDB bool, overrides ...func(*config.Config)) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Server.IsValidLanguage() {
		logg.Warn("Invalid default language, using fallback",
			zap.String("configured", cfg.Server.DefaultLanguage),
			zap.String("fallback", cfg.Server.Language()))
	}

	reg, err := loadRegistry(ctx, cfg, logg)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, log: logg, registry: reg}

	db, err := database.ConnectWithRetry(ctx, cfg.Database)
	if err != nil {
		if requireDB {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logg.Warn("Optional database connection failed, lookup sync disabled", zap.Error(err))
		return rt, nil
	}
	rt.db = db
	rt.log = logg.With(zap.String("database", db.Dialector.Name()))
	rt.log.Info("Connected to database")

	store := lookup.NewStore(db, cfg.Sync.Schema)
	if cfg.Sync.AutoMigrate {
		if err := store.EnsureSchema(ctx); err != nil {
			if requireDB {
				return nil, err
			}
			rt.log.Warn("Lookup table migration failed, lookup sync disabled", zap.Error(err))
			return rt, nil
		}
	}
	rt.store = store

	metrics, err := reconcile.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	rt.engine = reconcile.NewEngine(reg, rt.store, rt.log, reconcile.WithMetrics(metrics))
	return rt, nil
}

func loadRegistry(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*registry.Registry, error) {
	var client storage.Client
	if cfg.Catalog.Source == catalog.SourceStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	cat, err := catalog.Load(ctx, cfg.Catalog, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to load enum catalog: %w", err)
	}

	reg, err := cat.Registry(cfg.Catalog.StrictValues)
	if err != nil {
		return nil, fmt.Errorf("failed to build enum registry: %w", err)
	}

	logg.Info("Enum registry loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("types", reg.Len()),
		zap.Int("skipped", len(reg.Skipped())))
	return reg, nil
}
