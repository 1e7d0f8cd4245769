package checks

import (
	"fmt"
	"reflect"
	"strings"

	"enum-registry/core/database"
	"enum-registry/core/lookup"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the lookup table with its model.
type SchemaReport struct {
	Dialect string                 `json:"dialect"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error", "missing"
}

// CheckSchema verifies the lookup table in schema using the gorm model as the source of truth.
func CheckSchema(db *gorm.DB, schema string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	dialect := db.Dialector.Name()
	tableName := lookup.TableName(dialect, schema)
	report := &SchemaReport{
		Dialect: dialect,
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
		report.Matched = false
		return report, nil
	}

	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	if len(actualCols) == 0 {
		tblReport.Status = "missing"
		report.Matched = false
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[strings.ToLower(col.Field)] = col
	}

	model := reflect.TypeOf(lookup.EnumTypeLookup{})
	for i := 0; i < model.NumField(); i++ {
		gormTag := model.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			if tblReport.Status == "ok" {
				tblReport.Status = "error"
			}
			report.Matched = false
			continue
		}

		expType := strings.ToLower(parseGormType(gormTag))
		if expType == "" {
			continue
		}
		if !sameTypeFamily(expType, strings.ToLower(actCol.Type)) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
			tblReport.Status = "error"
			report.Matched = false
		}
	}

	report.Tables[tableName] = tblReport
	return report, nil
}

// sameTypeFamily compares column types loosely. Dialects spell the same type
// differently (varchar(100), character varying, int(11), integer).
func sameTypeFamily(expected, actual string) bool {
	switch {
	case strings.Contains(expected, "char") || strings.Contains(expected, "text"):
		return strings.Contains(actual, "char") || strings.Contains(actual, "text")
	case strings.Contains(expected, "int"):
		return strings.Contains(actual, "int")
	default:
		return strings.Contains(actual, expected)
	}
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
