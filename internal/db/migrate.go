package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var ddl string

// Tables lists every table the schema creates, in creation order.
var Tables = []string{"routes", "buses", "trips", "votes", "route_suggestions", "trip_feedback"}

// Migrate applies the embedded schema. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(ddl, "-- migrate") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// MissingTables reports schema tables that do not exist yet.
func MissingTables(ctx context.Context, q QueryRower) []string {
	out := []string{}
	for _, t := range Tables {
		if !HasTable(ctx, q, t) {
			out = append(out, t)
		}
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
