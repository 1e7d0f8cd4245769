// Package registry holds the process-wide, read-only set of enumerated types
// and resolves human-readable labels for their members.
//
// A Registry is built once at startup from a list of Candidates (see
// core/catalog) and then shared by handle with the query service and the
// reconciliation engine. Nothing in it changes after Build, so it is safe for
// unbounded concurrent use without locking.
//
// # Label Resolution
//
// Resolve picks the label for a member in a language using a fixed chain,
// first match wins:
//
//  1. an explicit label for that language (compared case-insensitively);
//  2. the member's generic label, which carries no language tag;
//  3. the member's symbolic name.
//
// # Duplicate Values
//
// Two members of one type may share a numeric value. By default the type is
// kept and the value is reported by Descriptor.AmbiguousValues; the member
// declared last owns that value's persisted row. With WithStrictValues the
// Builder rejects such types with ErrAmbiguousMember instead.
package registry
