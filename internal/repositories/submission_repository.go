package repositories

import (
	"context"
	"database/sql"

	intconfig "highwaybus/internal/config"
	intdb "highwaybus/internal/db"
	"highwaybus/internal/domain/models"
)

type SuggestionRepository struct {
	DB *sql.DB
}

func (r SuggestionRepository) db() (*sql.DB, error) {
	if r.DB != nil {
		return r.DB, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

// Insert stores one suggestion; blank optional fields are stored as NULL.
func (r SuggestionRepository) Insert(ctx context.Context, s models.RouteSuggestion) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO route_suggestions (start_location, end_location, preferred_time, notes, contact_email)
		VALUES (?, ?, ?, ?, ?)
	`, s.StartLocation, s.EndLocation, intdb.NullIfEmpty(s.PreferredTime), intdb.NullIfEmpty(s.Notes), intdb.NullIfEmpty(s.ContactEmail))
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return id, nil
}

type FeedbackRepository struct {
	DB *sql.DB
}

func (r FeedbackRepository) db() (*sql.DB, error) {
	if r.DB != nil {
		return r.DB, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

// Insert stores one feedback row. Useful must be set by the caller.
func (r FeedbackRepository) Insert(ctx context.Context, f models.TripFeedback) (int64, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	useful := f.Useful != nil && *f.Useful
	res, err := db.ExecContext(ctx, `
		INSERT INTO trip_feedback (trip_id, useful, comment)
		VALUES (?, ?, ?)
	`, f.TripID, useful, intdb.NullIfEmpty(f.Comment))
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return id, nil
}
