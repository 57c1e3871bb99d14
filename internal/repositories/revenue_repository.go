package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "flightbooking/internal/config"
	intdb "flightbooking/internal/db"
	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"
)

// RevenueFilter narrows MonthlyRevenue. Zero values disable a clause.
type RevenueFilter struct {
	AirlineName string
	Month       time.Time
}

type RevenueRepository struct {
	DB *sql.DB
}

func (r RevenueRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// MonthlyRevenue sums ticket prices and counts distinct flights per airline.
// Airlines without sales are listed with zero revenue unless a month is given.
// The month matches the ticket sale date, or the departure when tickets carry no date.
func (r RevenueRepository) MonthlyRevenue(ctx context.Context, f RevenueFilter) ([]models.RevenueStat, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "airlines") {
		return []models.RevenueStat{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if name := strings.TrimSpace(f.AirlineName); name != "" {
		where = append(where, "a.name LIKE ?")
		args = append(args, "%"+escapeLike(name)+"%")
	}
	if !f.Month.IsZero() {
		col := "f.departing_at"
		if intdb.HasColumn(db, "tickets", "date") {
			col = "t.date"
		}
		where = append(where, "YEAR("+col+") = ?", "MONTH("+col+") = ?")
		args = append(args, f.Month.Year(), int(f.Month.Month()))
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.name, COALESCE(SUM(t.price), 0), COUNT(DISTINCT f.id)
		FROM airlines a
		LEFT JOIN flights f ON f.airline_id = a.id
		LEFT JOIN tickets t ON t.flight_id = f.id
		WHERE %s
		GROUP BY a.id, a.name
		ORDER BY a.id ASC
	`, strings.Join(where, " AND "))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query revenue", Err: err}
	}
	defer rows.Close()

	out := []models.RevenueStat{}
	for rows.Next() {
		var s models.RevenueStat
		if err := rows.Scan(&s.AirlineID, &s.AirlineName, &s.Revenue, &s.FlightCount); err != nil {
			return nil, domain.InternalError{Msg: "failed to read revenue", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "failed to query revenue", Err: err}
	}
	return out, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
