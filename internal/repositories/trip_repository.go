package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "highwaybus/internal/config"
	intdb "highwaybus/internal/db"
	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
)

// tripSelect joins a trip with its route and bus. Joined columns stay nullable so a
// missing route or bus surfaces as a nil pointer rather than a scan error.
const tripSelect = `
	SELECT t.id, COALESCE(t.route_id,0), COALESCE(t.bus_id,0), COALESCE(t.departure_time,''), COALESCE(t.arrival_time,''),
	       r.id, r.start_location, r.end_location, r.route_number, r.distance, r.price, r.service_type, r.highway, r.notes, r.stops,
	       b.id, b.bus_number, b.bus_name, b.contact_number
	FROM trips t
	LEFT JOIN routes r ON r.id = t.route_id
	LEFT JOIN buses b ON b.id = t.bus_id
`

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() (*sql.DB, error) {
	if r.DB != nil {
		return r.DB, nil
	}
	if intconfig.DB != nil {
		return intconfig.DB, nil
	}
	return nil, errNoDB
}

// ListByRouteIDs returns trips of the given routes ordered by departure time.
// Trips sharing a departure time come back in the database's natural order.
func (r TripRepository) ListByRouteIDs(ctx context.Context, routeIDs []int64) ([]models.TripRecord, error) {
	if len(routeIDs) == 0 {
		return []models.TripRecord{}, nil
	}
	db, err := r.db()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`%s WHERE t.route_id IN (%s) ORDER BY t.departure_time ASC`, tripSelect, intdb.Placeholders(len(routeIDs)))
	rows, err := db.QueryContext(ctx, query, intdb.Int64Args(routeIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripRecord{}
	for rows.Next() {
		rec, err := scanTripRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID returns one joined trip or NotFoundError.
func (r TripRepository) GetByID(ctx context.Context, id int64) (models.TripRecord, error) {
	db, err := r.db()
	if err != nil {
		return models.TripRecord{}, err
	}

	rec, err := scanTripRecord(db.QueryRowContext(ctx, tripSelect+` WHERE t.id = ? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, domain.NotFoundError{Resource: "trip", Err: err}
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTripRecord(s rowScanner) (models.TripRecord, error) {
	var (
		rec models.TripRecord

		routeID     sql.NullInt64
		start       sql.NullString
		end         sql.NullString
		routeNumber sql.NullString
		distance    sql.NullString
		price       sql.NullFloat64
		serviceType sql.NullString
		highway     sql.NullBool
		notes       sql.NullString
		stops       sql.NullString

		busID         sql.NullInt64
		busNumber     sql.NullString
		busName       sql.NullString
		contactNumber sql.NullString
	)

	if err := s.Scan(
		&rec.ID, &rec.RouteID, &rec.BusID, &rec.DepartureTime, &rec.ArrivalTime,
		&routeID, &start, &end, &routeNumber, &distance, &price, &serviceType, &highway, &notes, &stops,
		&busID, &busNumber, &busName, &contactNumber,
	); err != nil {
		return rec, err
	}

	if routeID.Valid {
		rec.Route = &models.Route{
			ID:            routeID.Int64,
			StartLocation: start.String,
			EndLocation:   end.String,
			RouteNumber:   routeNumber.String,
			Distance:      distance.String,
			Price:         nullFloatPtr(price),
			ServiceType:   serviceType.String,
			Highway:       highway.Bool,
			Notes:         notes.String,
			Stops:         decodeStops(stops),
		}
	}
	if busID.Valid {
		rec.Bus = &models.Bus{
			ID:            busID.Int64,
			BusNumber:     busNumber.String,
			BusName:       busName.String,
			ContactNumber: contactNumber.String,
		}
	}
	return rec, nil
}
