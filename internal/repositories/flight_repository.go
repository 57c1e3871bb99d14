package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	intconfig "flightbooking/internal/config"
	intdb "flightbooking/internal/db"
	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"
	"flightbooking/internal/utils"
)

type FlightRepository struct {
	DB *sql.DB
}

func (r FlightRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListBookings returns every flight with its airline, ordered by departure.
// A schema without the flights table yields an empty list.
func (r FlightRepository) ListBookings(ctx context.Context) ([]models.BookingRecord, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "flights") {
		return []models.BookingRecord{}, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT f.id, a.name, f.plane_id, f.departing_at, f.arriving_at
		FROM flights f
		JOIN airlines a ON a.id = f.airline_id
		ORDER BY f.departing_at ASC, f.id ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list flights", Err: err}
	}
	defer rows.Close()

	out := []models.BookingRecord{}
	for rows.Next() {
		var (
			rec                 models.BookingRecord
			departing, arriving time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.Airline.Name, &rec.PlaneID, &departing, &arriving); err != nil {
			return nil, domain.InternalError{Msg: "failed to read flight", Err: err}
		}
		rec.DepartingAt = utils.FormatDateTime(departing)
		rec.ArrivingAt = utils.FormatDateTime(arriving)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "failed to list flights", Err: err}
	}
	return out, nil
}

// GetByID loads one flight for the detail page.
func (r FlightRepository) GetByID(ctx context.Context, id string) (models.FlightDetail, error) {
	db := r.db()
	if db == nil || id == "" {
		return models.FlightDetail{}, domain.NotFoundError{Resource: "flight"}
	}

	var (
		out                 models.FlightDetail
		departing, arriving time.Time
	)
	err := db.QueryRowContext(ctx, `
		SELECT f.id, f.name, a.name, f.plane_id, f.departing_at, f.arriving_at
		FROM flights f
		JOIN airlines a ON a.id = f.airline_id
		WHERE f.id = ?
		LIMIT 1
	`, id).Scan(&out.ID, &out.Name, &out.AirlineName, &out.PlaneID, &departing, &arriving)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FlightDetail{}, domain.NotFoundError{Resource: "flight", Err: err}
	}
	if err != nil {
		return models.FlightDetail{}, domain.InternalError{Msg: "failed to load flight", Err: err}
	}
	out.DepartingAt = utils.FormatDateTime(departing)
	out.ArrivingAt = utils.FormatDateTime(arriving)
	return out, nil
}
