// Package reconcile keeps the persisted enum lookup table in line with the
// enum registry.
//
// For every registered type and every requested language the engine builds
// the desired rows (one per distinct numeric value, labelled through
// registry.Resolve), reads the rows already stored, and computes a diff:
//
//   - insert rows that are missing;
//   - update the description of rows whose label changed;
//   - delete orphaned rows whose value is no longer declared (opt-in);
//   - delete duplicate rows sharing one identity, keeping the lowest id.
//
// # Units
//
// All languages of one type form a single unit, applied through
// Store.WithinUnit in one transaction. A failing unit (including one that
// hits its deadline) is rolled back on its own; other units still commit and
// the pass returns a *PartialFailure alongside the full Report. Overlapping
// passes in one process are serialized per type.
//
// A unit only ever touches rows of its own type, and applying the same
// registry twice produces no actions the second time.
//
// # Dry Run
//
// With Options.DryRun the unit computes its plan inside the transaction and
// rolls it back, so the report lists the planned actions without writing.
// PlanCache memoizes such reports for a short TTL.
package reconcile
