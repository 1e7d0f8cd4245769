package enums

import (
	"context"
	"errors"
	"strings"

	"enum-registry/core/reconcile"
	"enum-registry/core/registry"
	"enum-registry/core/server"
	"enum-registry/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidEnumType is returned for names that are not registered enum types.
	ErrInvalidEnumType = errors.New("invalid enum type")
	// ErrSyncUnavailable is returned when no lookup table is configured.
	ErrSyncUnavailable = errors.New("lookup table synchronization is not configured")
)

// Service answers enum queries from the registry and runs synchronization passes.
type Service struct {
	registry        *registry.Registry
	engine          *reconcile.Engine
	plans           *reconcile.PlanCache
	sync            reconcile.Config
	defaultLanguage string
	logger          *zap.Logger
}

// NewService creates the enums service. engine may be nil when no database is
// configured; queries still work and synchronization reports ErrSyncUnavailable.
func NewService(reg *registry.Registry, engine *reconcile.Engine, serverCfg server.Config, syncCfg reconcile.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		registry:        reg,
		engine:          engine,
		plans:           reconcile.NewPlanCache(syncCfg.PlanCacheTTL()),
		sync:            syncCfg,
		defaultLanguage: strings.ToLower(serverCfg.Language()),
		logger:          logger,
	}
}

// GetAvailableTypes returns the registered type names in discovery order.
func (s *Service) GetAvailableTypes() []string {
	return s.registry.Names()
}

// EffectiveLanguage picks the label language for a request.
func (s *Service) EffectiveLanguage(explicit, callerLanguage string) string {
	if lang := strings.ToLower(strings.TrimSpace(explicit)); lang != "" {
		return lang
	}
	if lang := utils.ShortLanguage(callerLanguage); lang != "" {
		return lang
	}
	return s.defaultLanguage
}

// GetValues returns one view per member of enumName, in declaration order.
func (s *Service) GetValues(enumName, language, callerLanguage string) ([]ValueView, error) {
	desc, err := s.registry.Lookup(enumName)
	if err != nil {
		return nil, ErrInvalidEnumType
	}

	lang := s.EffectiveLanguage(language, callerLanguage)
	members := desc.Members()
	views := make([]ValueView, 0, len(members))
	for _, m := range members {
		views = append(views, ValueView{
			Name:        m.Name,
			Value:       m.Value,
			Description: registry.Resolve(m, lang),
		})
	}
	return views, nil
}

// SyncEnabled reports whether synchronization is available.
func (s *Service) SyncEnabled() bool {
	return s.engine != nil
}

func (s *Service) options(req SyncRequest) reconcile.Options {
	opts := s.sync.Options()
	if len(req.Languages) > 0 {
		opts.Languages = req.Languages
	}
	opts.DeleteOrphans = opts.DeleteOrphans && !req.KeepOrphans
	opts.DryRun = req.DryRun
	return opts
}

// Sync runs a synchronization pass. On partial failure both the report and a
// *reconcile.PartialFailure are returned.
func (s *Service) Sync(ctx context.Context, req SyncRequest) (*reconcile.Report, error) {
	if s.engine == nil {
		return nil, ErrSyncUnavailable
	}

	report, err := s.run(ctx, s.options(req), req.Type)
	if !req.DryRun && report != nil {
		s.plans.Invalidate()
	}
	return report, err
}

// PlanSync returns the drift between the registry and the lookup table
// without writing. Plans are cached for the configured TTL.
func (s *Service) PlanSync(ctx context.Context, req SyncRequest) (*reconcile.Report, error) {
	if s.engine == nil {
		return nil, ErrSyncUnavailable
	}

	opts := s.options(req)
	opts.DryRun = true
	if languages, err := utils.NormalizeLanguages(opts.Languages); err == nil {
		opts.Languages = languages
	}
	return s.plans.GetOrPlan(ctx, reconcile.PlanKey(opts, req.Type), func(ctx context.Context) (*reconcile.Report, error) {
		return s.run(ctx, opts, req.Type)
	})
}

func (s *Service) run(ctx context.Context, opts reconcile.Options, enumName string) (*reconcile.Report, error) {
	if enumName == "" {
		return s.engine.ReconcileAll(ctx, opts)
	}
	report, err := s.engine.ReconcileOne(ctx, enumName, opts)
	if errors.Is(err, registry.ErrNotFound) {
		return nil, ErrInvalidEnumType
	}
	return report, err
}
