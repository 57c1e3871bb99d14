package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"flightbooking/internal/domain/models"
)

// ErrSuperseded is returned by BookingFilter.Apply when a newer Apply started
// before this one could write its result.
var ErrSuperseded = errors.New("booking filter superseded by a newer request")

// BookingSource supplies the booking list, e.g. *bookingapi.Client.
type BookingSource interface {
	SearchBookings(ctx context.Context) ([]models.BookingRecord, error)
}

// ContentTarget is the output container whose whole content is replaced.
type ContentTarget interface {
	ReplaceContents(fragment string) error
}

var bookingRowsTmpl = template.Must(template.New("booking_rows").Parse(
	`{{range .}}<tr>
	<td>{{.Airline.Name}}</td>
	<td>{{.PlaneID}}</td>
	<td>{{.DepartingAt}}</td>
	<td>{{.ArrivingAt}}</td>
	<td><a href="/flight/{{.ID}}" class="btn-choose">Select</a></td>
</tr>
{{end}}`))

// MatchAirline keeps records whose airline name contains filter, ignoring case.
// An empty filter keeps everything. Order is preserved.
func MatchAirline(records []models.BookingRecord, filter string) []models.BookingRecord {
	needle := strings.ToLower(filter)
	out := make([]models.BookingRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Airline.Name), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// RenderBookingRows writes one <tr> per record.
func RenderBookingRows(w io.Writer, records []models.BookingRecord) error {
	return bookingRowsTmpl.Execute(w, records)
}

// BookingFilter runs search-filter-render passes for one output container.
// A new Apply cancels the one still in flight; only the newest may write.
type BookingFilter struct {
	Source BookingSource

	mu         sync.Mutex
	generation uint64
	inFlight   int
	cancel     context.CancelFunc
}

func NewBookingFilter(source BookingSource) *BookingFilter {
	return &BookingFilter{Source: source}
}

// Apply fetches the booking list, keeps the records matching filter and replaces
// the contents of target with their rows. It returns the number of rows written.
// Fetch errors are returned as-is and leave target untouched.
func (f *BookingFilter) Apply(ctx context.Context, filter string, target ContentTarget) (int, error) {
	ctx, gen := f.begin(ctx)
	defer f.end()

	records, err := f.Source.SearchBookings(ctx)
	if err != nil {
		if !f.current(gen) {
			return 0, ErrSuperseded
		}
		return 0, err
	}

	matched := MatchAirline(records, filter)
	var buf strings.Builder
	if err := RenderBookingRows(&buf, matched); err != nil {
		return 0, fmt.Errorf("render booking rows: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != gen {
		return 0, ErrSuperseded
	}
	if err := target.ReplaceContents(buf.String()); err != nil {
		return 0, err
	}
	return len(matched), nil
}

// Idle reports whether no Apply is running.
func (f *BookingFilter) Idle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight == 0
}

func (f *BookingFilter) begin(ctx context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	f.generation++
	f.inFlight++
	f.cancel = cancel
	return ctx, f.generation
}

func (f *BookingFilter) end() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	if f.inFlight == 0 && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *BookingFilter) current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation == gen
}
