package reconcile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrStoreUnavailable marks a failure to reach or use the backing store.
	ErrStoreUnavailable = errors.New("reconcile: store unavailable")
	// ErrIdentityConflict marks a write rejected by the (enum, value, language) uniqueness rule.
	ErrIdentityConflict = errors.New("reconcile: identity conflict")
	// ErrInvalidLanguage is returned when a requested language code does not parse.
	ErrInvalidLanguage = errors.New("reconcile: invalid language")

	errDryRun = errors.New("reconcile: dry run")
)

// Column limits of the lookup table.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 250
)

// Row is one persisted lookup row.
type Row struct {
	ID          uint   `json:"id,omitempty"`
	EnumName    string `json:"enum_name"`
	Value       int32  `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// Key identifies a row within one enum type.
type Key struct {
	Value    int32
	Language string
}

// Key returns the identity of the row within its type.
func (r Row) Key() Key {
	return Key{Value: r.Value, Language: r.Language}
}

// ActionType is the kind of change a reconciliation action applies.
type ActionType string

const (
	// ActionInsert adds a missing row.
	ActionInsert ActionType = "insert"
	// ActionUpdate rewrites the description of an existing row.
	ActionUpdate ActionType = "update"
	// ActionDeleteOrphan removes a row whose value is no longer declared.
	ActionDeleteOrphan ActionType = "delete_orphan"
	// ActionDeleteDuplicate removes an extra row sharing an identity.
	ActionDeleteDuplicate ActionType = "delete_duplicate"
)

// Action is one planned change.
type Action struct {
	Type ActionType `json:"type"`
	Row  Row        `json:"row"`
	// Previous is the description being replaced, for updates.
	Previous string `json:"previous,omitempty"`
}

// Options controls one reconciliation pass.
type Options struct {
	// Languages to maintain rows for. An empty set makes the pass a no-op.
	Languages []string
	// DeleteOrphans removes rows for values that are no longer declared.
	DeleteOrphans bool
	// DryRun plans without writing.
	DryRun bool
	// Concurrency bounds the number of units in flight; values below 1 mean 1.
	Concurrency int
	// UnitTimeout bounds each unit; zero means no deadline.
	UnitTimeout time.Duration
}

// UnitResult is the outcome of one type's unit.
type UnitResult struct {
	EnumName   string        `json:"enum_name"`
	Inserted   int           `json:"inserted"`
	Updated    int           `json:"updated"`
	Deleted    int           `json:"deleted"`
	Duplicates int           `json:"duplicates"`
	Actions    []Action      `json:"actions,omitempty"`
	Ambiguous  []int32       `json:"ambiguous_values,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`

	err error
}

// Err returns the unit's failure, nil on success.
func (u UnitResult) Err() error {
	return u.err
}

// Changed reports whether the unit planned or applied any action.
func (u UnitResult) Changed() bool {
	return u.Inserted+u.Updated+u.Deleted+u.Duplicates > 0
}

// Summary aggregates the unit results of a pass.
type Summary struct {
	Types      int `json:"types"`
	Failed     int `json:"failed"`
	Inserted   int `json:"inserted"`
	Updated    int `json:"updated"`
	Deleted    int `json:"deleted"`
	Duplicates int `json:"duplicates"`
}

// Report is the outcome of a pass.
type Report struct {
	RunID     string        `json:"run_id"`
	Languages []string      `json:"languages"`
	DryRun    bool          `json:"dry_run"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Units     []UnitResult  `json:"units"`
	Summary   Summary       `json:"summary"`
}

func (r *Report) summarize() {
	r.Summary = Summary{Types: len(r.Units)}
	for _, u := range r.Units {
		if u.err != nil {
			r.Summary.Failed++
			continue
		}
		r.Summary.Inserted += u.Inserted
		r.Summary.Updated += u.Updated
		r.Summary.Deleted += u.Deleted
		r.Summary.Duplicates += u.Duplicates
	}
}

// Failures returns the failed units.
func (r *Report) Failures() []UnitError {
	var out []UnitError
	for _, u := range r.Units {
		if u.err != nil {
			out = append(out, UnitError{EnumName: u.EnumName, Err: u.err})
		}
	}
	return out
}

// UnitError ties a failure to the type whose unit failed.
type UnitError struct {
	EnumName string
	Err      error
}

func (e UnitError) Error() string {
	return fmt.Sprintf("%s: %v", e.EnumName, e.Err)
}

func (e UnitError) Unwrap() error {
	return e.Err
}

// PartialFailure is returned when some units of a pass failed.
// The successful units were committed.
type PartialFailure struct {
	Total  int
	Errors []UnitError
}

func (e *PartialFailure) Error() string {
	parts := make([]string, len(e.Errors))
	for i, ue := range e.Errors {
		parts[i] = ue.Error()
	}
	return fmt.Sprintf("reconcile: %d of %d units failed: %s", len(e.Errors), e.Total, strings.Join(parts, "; "))
}

func (e *PartialFailure) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, ue := range e.Errors {
		out[i] = ue
	}
	return out
}
