package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"Plain", errors.New("boom"), false},
		{"Gorm Duplicated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"Postgres Unique", &pgconn.PgError{Code: "23505"}, true},
		{"Postgres Other", &pgconn.PgError{Code: "23502"}, false},
		{"MySQL Duplicate", &mysql.MySQLError{Number: 1062}, true},
		{"MySQL Other", &mysql.MySQLError{Number: 1045}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE t (k TEXT, UNIQUE(k))").Error)
	require.NoError(t, db.Exec("INSERT INTO t (k) VALUES ('a')").Error)

	err = db.Exec("INSERT INTO t (k) VALUES ('a')").Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
