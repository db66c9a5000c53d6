package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "highwaybus/internal/config"
	intdb "highwaybus/internal/db"
)

type VoteRepository struct {
	DB *sql.DB
}

func (r VoteRepository) db() (*sql.DB, error) {
	if r.DB != nil {
		return r.DB, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

// CountsByTripIDs maps trip id to vote count. Trips without a vote row are absent from the map.
func (r VoteRepository) CountsByTripIDs(ctx context.Context, tripIDs []int64) (map[int64]int, error) {
	out := map[int64]int{}
	if len(tripIDs) == 0 {
		return out, nil
	}
	db, err := r.db()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, COALESCE(count,0) FROM votes WHERE id IN (%s)`, intdb.Placeholders(len(tripIDs)))
	rows, err := db.QueryContext(ctx, query, intdb.Int64Args(tripIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		out[id] = count
	}
	return out, rows.Err()
}

// CountForTrip returns the stored count, 0 when the trip has never been voted on.
func (r VoteRepository) CountForTrip(ctx context.Context, tripID int64) (int, error) {
	db, err := r.db()
	if err != nil {
		return 0, err
	}
	var count int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(count,0) FROM votes WHERE id = ? LIMIT 1`, tripID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

// Upsert writes count for tripID, inserting the row when absent. Last writer wins.
func (r VoteRepository) Upsert(ctx context.Context, tripID int64, count int) error {
	db, err := r.db()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO votes (id, count) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE count = VALUES(count)
	`, tripID, count)
	return err
}
