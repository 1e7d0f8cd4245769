package lookup

import (
	"context"
	"fmt"
	"strings"

	"enum-registry/core/database"
	"enum-registry/core/reconcile"

	"gorm.io/gorm"
)

// Store is the gorm-backed lookup table.
type Store struct {
	db     *gorm.DB
	schema string
	table  string
}

// NewStore returns a store for the lookup table in schema.
func NewStore(db *gorm.DB, schema string) *Store {
	return &Store{
		db:     db,
		schema: schema,
		table:  TableName(db.Dialector.Name(), schema),
	}
}

// Table returns the (possibly schema-qualified) table name in use.
func (s *Store) Table() string {
	return s.table
}

// Schema returns the configured schema.
func (s *Store) Schema() string {
	return s.schema
}

// EnsureSchema creates the schema (a database on MySQL) and migrates the
// lookup table.
func (s *Store) EnsureSchema(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if stmt := createSchemaStatement(db.Dialector.Name(), s.schema); stmt != "" {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("%w: failed to create schema %s: %v", reconcile.ErrStoreUnavailable, s.schema, err)
		}
	}
	if err := db.Table(s.table).AutoMigrate(&EnumTypeLookup{}); err != nil {
		return fmt.Errorf("%w: failed to migrate %s: %v", reconcile.ErrStoreUnavailable, s.table, err)
	}
	return nil
}

func createSchemaStatement(dialect, schema string) string {
	if schema == "" {
		return ""
	}
	switch dialect {
	case database.DriverPostgres:
		return fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, schema)
	case database.DriverMySQL:
		return fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", schema)
	}
	return ""
}

// WithinUnit runs fn in one database transaction.
func (s *Store) WithinUnit(ctx context.Context, enumName string, fn func(tx reconcile.UnitTx) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == database.DriverPostgres {
			// Serializes units of one type across processes until commit.
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", strings.ToLower(enumName)).Error; err != nil {
				fnErr = classify("lock", err)
				return fnErr
			}
		}
		fnErr = fn(&unitTx{db: tx, table: s.table})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return classify("transaction", err)
	}
	return err
}

// ListRows returns stored rows of enumName ordered by value and language.
// An empty language returns every language.
func (s *Store) ListRows(ctx context.Context, enumName, language string) ([]reconcile.Row, error) {
	q := s.db.WithContext(ctx).Table(s.table).Where("enum_name = ?", enumName)
	if language != "" {
		q = q.Where("language = ?", strings.ToLower(language))
	}

	var models []EnumTypeLookup
	if err := q.Order("enum_value, language, id").Find(&models).Error; err != nil {
		return nil, classify("list", err)
	}

	rows := make([]reconcile.Row, len(models))
	for i, m := range models {
		rows[i] = toRow(m)
	}
	return rows, nil
}

type unitTx struct {
	db    *gorm.DB
	table string
}

func (t *unitTx) Rows(ctx context.Context, enumName, language string) ([]reconcile.Row, error) {
	var models []EnumTypeLookup
	err := t.db.WithContext(ctx).Table(t.table).
		Where("enum_name = ? AND language = ?", enumName, language).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, classify("read", err)
	}

	rows := make([]reconcile.Row, len(models))
	for i, m := range models {
		rows[i] = toRow(m)
	}
	return rows, nil
}

func (t *unitTx) Insert(ctx context.Context, rows []reconcile.Row) error {
	if len(rows) == 0 {
		return nil
	}
	models := make([]EnumTypeLookup, len(rows))
	for i, r := range rows {
		models[i] = fromRow(r)
		models[i].ID = 0
	}
	if err := t.db.WithContext(ctx).Table(t.table).Create(&models).Error; err != nil {
		return classify("insert", err)
	}
	return nil
}

func (t *unitTx) UpdateDescriptions(ctx context.Context, rows []reconcile.Row) error {
	for _, r := range rows {
		err := t.db.WithContext(ctx).Table(t.table).
			Where("id = ?", r.ID).
			Update("description", r.Description).Error
		if err != nil {
			return classify("update", err)
		}
	}
	return nil
}

func (t *unitTx) Delete(ctx context.Context, rows []reconcile.Row) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	if err := t.db.WithContext(ctx).Table(t.table).Where("id IN ?", ids).Delete(&EnumTypeLookup{}).Error; err != nil {
		return classify("delete", err)
	}
	return nil
}

func classify(op string, err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s: %w", reconcile.ErrIdentityConflict, op, err)
	}
	return fmt.Errorf("%w: %s: %w", reconcile.ErrStoreUnavailable, op, err)
}
