package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"enum-registry/core/registry"
	"enum-registry/core/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine applies the registry to a Store.
type Engine struct {
	registry *registry.Registry
	store    Store
	logger   *zap.Logger
	metrics  *Metrics
	locks    *typeLocks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMetrics records counters for every unit.
func WithMetrics(m *Metrics) EngineOption {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewEngine creates an engine for reg backed by store.
func NewEngine(reg *registry.Registry, store Store, logger *zap.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		registry: reg,
		store:    store,
		logger:   logger,
		metrics:  noopMetrics(),
		locks:    newTypeLocks(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine applies.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// ReconcileAll runs one pass over every registered type.
// The Report is always returned once the options are valid; when some units
// failed the error is a *PartialFailure.
func (e *Engine) ReconcileAll(ctx context.Context, opts Options) (*Report, error) {
	return e.run(ctx, e.registry.Descriptors(), opts)
}

// ReconcileOne runs a pass for a single type.
func (e *Engine) ReconcileOne(ctx context.Context, enumName string, opts Options) (*Report, error) {
	desc, err := e.registry.Lookup(enumName)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, []*registry.Descriptor{desc}, opts)
}

func (e *Engine) run(ctx context.Context, descs []*registry.Descriptor, opts Options) (*Report, error) {
	languages, err := utils.NormalizeLanguages(opts.Languages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLanguage, err)
	}
	opts.Languages = languages

	report := &Report{
		RunID:     uuid.NewString(),
		Languages: languages,
		DryRun:    opts.DryRun,
		StartedAt: time.Now(),
		Units:     []UnitResult{},
	}
	if len(languages) == 0 {
		e.logger.Info("No languages requested, skipping reconciliation", zap.String("run_id", report.RunID))
		return report, nil
	}

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	results := make([]UnitResult, len(descs))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, desc := range descs {
		g.Go(func() error {
			results[i] = e.reconcileUnit(ctx, desc, opts)
			return nil
		})
	}
	_ = g.Wait()

	report.Units = results
	report.Duration = time.Since(report.StartedAt)
	report.summarize()

	e.logger.Info("Reconciliation finished",
		zap.String("run_id", report.RunID),
		zap.Bool("dry_run", opts.DryRun),
		zap.Strings("languages", languages),
		zap.Int("types", report.Summary.Types),
		zap.Int("failed", report.Summary.Failed),
		zap.Int("inserted", report.Summary.Inserted),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("deleted", report.Summary.Deleted),
		zap.Int("duplicates", report.Summary.Duplicates),
		zap.Duration("duration", report.Duration),
	)

	if failures := report.Failures(); len(failures) > 0 {
		return report, &PartialFailure{Total: len(report.Units), Errors: failures}
	}
	return report, nil
}

func (e *Engine) reconcileUnit(ctx context.Context, desc *registry.Descriptor, opts Options) UnitResult {
	start := time.Now()
	res := UnitResult{EnumName: desc.Name(), Ambiguous: desc.AmbiguousValues()}
	l := e.logger.With(zap.String("enum", desc.Name()))

	if len(res.Ambiguous) > 0 {
		l.Warn("Enum declares values more than once, last declared member wins",
			zap.Int32s("values", res.Ambiguous))
	}

	if opts.UnitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.UnitTimeout)
		defer cancel()
	}

	unlock, err := e.locks.lock(ctx, desc.Name())
	if err != nil {
		return e.fail(ctx, l, res, start, err)
	}
	defer unlock()

	var actions []Action
	err = e.store.WithinUnit(ctx, desc.Name(), func(tx UnitTx) error {
		actions = actions[:0]
		for _, lang := range opts.Languages {
			existing, err := tx.Rows(ctx, desc.Name(), lang)
			if err != nil {
				return err
			}
			actions = append(actions, Diff(DesiredRows(desc, lang), existing, opts.DeleteOrphans)...)
		}
		if opts.DryRun {
			return errDryRun
		}
		if err := Apply(ctx, tx, actions); err != nil {
			return err
		}
		// A unit that ran past its deadline must not commit.
		return ctx.Err()
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return e.fail(ctx, l, res, start, err)
	}

	res.Actions = actions
	res.Inserted, res.Updated, res.Deleted, res.Duplicates = count(actions)
	res.Duration = time.Since(start)

	if !opts.DryRun {
		e.metrics.recordUnit(ctx, res)
	}
	l.Info("Reconciled enum",
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("deleted", res.Deleted),
		zap.Int("duplicates", res.Duplicates),
		zap.Duration("duration", res.Duration),
	)
	return res
}

func (e *Engine) fail(ctx context.Context, l *zap.Logger, res UnitResult, start time.Time, err error) UnitResult {
	res.err = err
	res.Error = err.Error()
	res.Duration = time.Since(start)
	e.metrics.recordUnit(ctx, res)
	l.Error("Enum reconciliation failed, unit rolled back", zap.Error(err))
	return res
}
