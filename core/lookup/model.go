package lookup

import (
	"strings"

	"enum-registry/core/database"
	"enum-registry/core/reconcile"
)

// BaseTableName is the unqualified name of the lookup table.
const BaseTableName = "enum_type_lookups"

// IdentityIndex is the unique index over (enum_name, enum_value, language).
const IdentityIndex = "idx_enum_type_lookups_identity"

// EnumTypeLookup is one persisted lookup row.
type EnumTypeLookup struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	EnumName    string `gorm:"column:enum_name;type:varchar(100);not null;uniqueIndex:idx_enum_type_lookups_identity,priority:1"`
	EnumValue   int32  `gorm:"column:enum_value;type:int;not null;uniqueIndex:idx_enum_type_lookups_identity,priority:2"`
	Name        string `gorm:"column:name;type:varchar(100);not null"`
	Description string `gorm:"column:description;type:varchar(250);not null"`
	Language    string `gorm:"column:language;type:varchar(10);not null;uniqueIndex:idx_enum_type_lookups_identity,priority:3"`
}

func (EnumTypeLookup) TableName() string {
	return BaseTableName
}

// TableName returns the lookup table name for a gorm dialect, qualified with
// schema where the dialect supports it.
func TableName(dialect, schema string) string {
	if schema == "" || dialect == database.DriverSQLite {
		return BaseTableName
	}
	return schema + "." + BaseTableName
}

func toRow(m EnumTypeLookup) reconcile.Row {
	return reconcile.Row{
		ID:          m.ID,
		EnumName:    m.EnumName,
		Value:       m.EnumValue,
		Name:        m.Name,
		Description: m.Description,
		// Case-insensitive collations return "TR" for "tr".
		Language: strings.ToLower(m.Language),
	}
}

func fromRow(r reconcile.Row) EnumTypeLookup {
	return EnumTypeLookup{
		ID:          r.ID,
		EnumName:    r.EnumName,
		EnumValue:   r.Value,
		Name:        r.Name,
		Description: r.Description,
		Language:    r.Language,
	}
}
