package reconcile

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const namespace = "enum_registry"

// Metrics records reconciliation counters.
type Metrics struct {
	rowsInserted metric.Int64Counter
	rowsUpdated  metric.Int64Counter
	rowsDeleted  metric.Int64Counter
	unitsApplied metric.Int64Counter
	unitFailures metric.Int64Counter
}

// NewMetrics registers the reconciliation counters with mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(namespace, metric.WithInstrumentationVersion("v0.1.0"))

	m := new(Metrics)
	var err error

	if m.rowsInserted, err = meter.Int64Counter(
		"lookup_rows_inserted_total",
		metric.WithDescription("Total number of lookup rows inserted"),
	); err != nil {
		return nil, err
	}

	if m.rowsUpdated, err = meter.Int64Counter(
		"lookup_rows_updated_total",
		metric.WithDescription("Total number of lookup row descriptions updated"),
	); err != nil {
		return nil, err
	}

	if m.rowsDeleted, err = meter.Int64Counter(
		"lookup_rows_deleted_total",
		metric.WithDescription("Total number of orphaned or duplicate lookup rows deleted"),
	); err != nil {
		return nil, err
	}

	if m.unitsApplied, err = meter.Int64Counter(
		"reconcile_units_total",
		metric.WithDescription("Total number of per-type units applied"),
	); err != nil {
		return nil, err
	}

	if m.unitFailures, err = meter.Int64Counter(
		"reconcile_unit_failures_total",
		metric.WithDescription("Total number of per-type units rolled back after a failure"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func noopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider())
	return m
}

func (m *Metrics) recordUnit(ctx context.Context, u UnitResult) {
	attrs := metric.WithAttributes(attribute.String("enum", u.EnumName))
	if u.err != nil {
		m.unitFailures.Add(ctx, 1, attrs)
		return
	}
	m.unitsApplied.Add(ctx, 1, attrs)
	m.rowsInserted.Add(ctx, int64(u.Inserted), attrs)
	m.rowsUpdated.Add(ctx, int64(u.Updated), attrs)
	m.rowsDeleted.Add(ctx, int64(u.Deleted+u.Duplicates), attrs)
}
