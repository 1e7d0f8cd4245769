package reconcile

import "context"

// Store gives the engine transactional access to the lookup table.
type Store interface {
	// WithinUnit runs fn in one atomic read-modify-write unit for enumName.
	// A non-nil error from fn rolls the unit back.
	WithinUnit(ctx context.Context, enumName string, fn func(tx UnitTx) error) error
}

// UnitTx is the view of the lookup table inside a unit.
type UnitTx interface {
	// Rows returns the stored rows of enumName in language.
	Rows(ctx context.Context, enumName, language string) ([]Row, error)
	// Insert adds rows.
	Insert(ctx context.Context, rows []Row) error
	// UpdateDescriptions rewrites the description of rows by ID.
	UpdateDescriptions(ctx context.Context, rows []Row) error
	// Delete removes rows by ID.
	Delete(ctx context.Context, rows []Row) error
}
