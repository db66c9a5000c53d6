package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "highwaybus/internal/config"
	"highwaybus/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() (*sql.DB, error) {
	if r.DB != nil {
		return r.DB, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

var errNoDB = errors.New("database not connected")

// ListPairs returns the start/end pair of every route.
func (r RouteRepository) ListPairs(ctx context.Context) ([]models.RoutePair, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT COALESCE(start_location,''), COALESCE(end_location,'') FROM routes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoutePair{}
	for rows.Next() {
		var p models.RoutePair
		if err := rows.Scan(&p.StartLocation, &p.EndLocation); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FindByEndpoints returns routes whose start and end match exactly. The
// comparison is byte-wise, so case and accents must match too.
func (r RouteRepository) FindByEndpoints(ctx context.Context, start, end string) ([]models.Route, error) {
	db, err := r.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, COALESCE(start_location,''), COALESCE(end_location,''), COALESCE(route_number,''),
		       COALESCE(distance,''), price, COALESCE(service_type,''), COALESCE(highway,0), COALESCE(notes,''), stops
		FROM routes
		WHERE BINARY start_location = ? AND BINARY end_location = ?
		ORDER BY id ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var (
			rt    models.Route
			price sql.NullFloat64
			stops sql.NullString
		)
		if err := rows.Scan(
			&rt.ID, &rt.StartLocation, &rt.EndLocation, &rt.RouteNumber,
			&rt.Distance, &price, &rt.ServiceType, &rt.Highway, &rt.Notes, &stops,
		); err != nil {
			return nil, err
		}
		rt.Price = nullFloatPtr(price)
		rt.Stops = decodeStops(stops)
		out = append(out, rt)
	}
	return out, rows.Err()
}

func nullFloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// decodeStops reads the JSON stops column. NULL or malformed values yield an empty list.
func decodeStops(raw sql.NullString) []string {
	out := []string{}
	if !raw.Valid || raw.String == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
