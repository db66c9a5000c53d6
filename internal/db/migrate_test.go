package db

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_RunsEveryStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	for _, table := range Tables {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table + " ")).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMigrate_ReportsFailingStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS routes").WillReturnError(errors.New("access denied"))

	err = Migrate(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "CREATE TABLE IF NOT EXISTS routes") {
		t.Fatalf("expected error naming the statement, got %v", err)
	}
}

func TestMissingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	for _, table := range Tables {
		rows := sqlmock.NewRows([]string{"table_name"})
		if table != "votes" {
			rows.AddRow(table)
		}
		mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.tables")).WithArgs(table).WillReturnRows(rows)
	}

	missing := MissingTables(context.Background(), db)
	if len(missing) != 1 || missing[0] != "votes" {
		t.Fatalf("expected [votes], got %v", missing)
	}
}

func TestPlaceholders(t *testing.T) {
	cases := map[int]string{0: "", 1: "?", 3: "?, ?, ?"}
	for n, want := range cases {
		if got := Placeholders(n); got != want {
			t.Fatalf("Placeholders(%d) = %q, want %q", n, got, want)
		}
	}
	if NullIfEmpty("  ") != nil {
		t.Fatalf("blank string should map to NULL")
	}
}

func TestSchema_RouteEndpointsUseBinaryCollation(t *testing.T) {
	routes := strings.SplitN(ddl, "-- migrate", 2)[0]
	for _, col := range []string{"start_location", "end_location"} {
		if !strings.Contains(routes, col+" VARCHAR(120) COLLATE utf8mb4_bin") {
			t.Fatalf("routes.%s must use a case- and accent-sensitive collation", col)
		}
	}
}
