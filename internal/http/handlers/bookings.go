package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"flightbooking/internal/http/middleware"
	"flightbooking/internal/repositories"
	"flightbooking/internal/services"
	"flightbooking/internal/utils"

	"github.com/gin-gonic/gin"
	ds "github.com/starfederation/datastar-go/datastar"
)

const clientIDCookieName = "client-id"

type filterSignals struct {
	From string `json:"from"`
}

// BookingHandler serves the booking list and the airline filter. Each browser
// (client-id cookie) gets its own BookingFilter so a newer keystroke supersedes
// the older request from the same browser only.
type BookingHandler struct {
	Source  services.BookingSource
	Flights repositories.FlightRepository

	mu       sync.Mutex
	sessions map[string]*filterSession
}

// filterSession is a client's filter plus the number of requests holding it.
type filterSession struct {
	filter  *services.BookingFilter
	holders int
}

func NewBookingHandler(source services.BookingSource, flights repositories.FlightRepository) *BookingHandler {
	return &BookingHandler{
		Source:  source,
		Flights: flights,
		sessions: make(map[string]*filterSession),
	}
}

// SearchBookings handles GET /api/search_booking.
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	records, err := h.Flights.ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// SearchPage handles GET /search_booking with every flight listed.
func (h *BookingHandler) SearchPage(c *gin.Context) {
	records, err := h.Flights.ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var rows strings.Builder
	if err := services.RenderBookingRows(&rows, records); err != nil {
		RespondDomainError(c, err)
		return
	}
	renderPage(c, http.StatusOK, "search_booking", pageData{
		Title: "Search flights",
		Rows:  template.HTML(rows.String()),
		Count: len(records),
	})
}

// Filter handles GET /search_booking/filter as a Datastar SSE stream: the rows
// matching the `from` signal replace the contents of #filter_flight.
func (h *BookingHandler) Filter(c *gin.Context) {
	var sig filterSignals
	if err := ds.ReadSignals(c.Request, &sig); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid signals", err.Error())
		return
	}

	reqID := middleware.GetRequestID(c)
	clientID := clientIdentifier(c)
	filter := h.acquire(clientID)
	defer h.release(clientID)

	sse := ds.NewSSE(c.Writer, c.Request)
	target := containerTarget{sse: sse, template: "filter_flight"}

	n, err := filter.Apply(c.Request.Context(), sig.From, target)
	switch {
	case errors.Is(err, services.ErrSuperseded):
		utils.LogEvent(reqID, "bookings", "filter_superseded", fmt.Sprintf("from=%q", sig.From))
		return
	case err != nil:
		_ = c.Error(err)
		_, _, msg := errorStatus(err)
		utils.LogEvent(reqID, "bookings", "filter_failed", err.Error())
		if html, ferr := fragment("filter_error", msg); ferr == nil {
			_ = sse.PatchElements(html)
		}
		return
	}

	if html, ferr := fragment("filter_error", ""); ferr == nil {
		_ = sse.PatchElements(html)
	}
	utils.LogEvent(reqID, "bookings", "filter", fmt.Sprintf("from=%q rows=%d", sig.From, n))
}

// GetFlight handles GET /api/flights/:id.
func (h *BookingHandler) GetFlight(c *gin.Context) {
	flight, err := h.Flights.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// FlightPage handles GET /flight/:id, the target of every booking row link.
func (h *BookingHandler) FlightPage(c *gin.Context) {
	flight, err := h.Flights.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		status, _, msg := errorStatus(err)
		c.String(status, msg)
		return
	}
	renderPage(c, http.StatusOK, "flight", pageData{Title: flight.Name, Flight: flight})
}

func (h *BookingHandler) acquire(clientID string) *services.BookingFilter {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[clientID]
	if !ok {
		sess = &filterSession{filter: services.NewBookingFilter(h.Source)}
		h.sessions[clientID] = sess
	}
	sess.holders++
	return sess.filter
}

// release forgets the client's filter once no request holds it.
func (h *BookingHandler) release(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[clientID]
	if !ok {
		return
	}
	if sess.holders--; sess.holders <= 0 {
		delete(h.sessions, clientID)
	}
}

func (h *BookingHandler) activeSessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// clientIdentifier returns a stable id for the browser, setting the cookie when missing.
func clientIdentifier(c *gin.Context) string {
	if v, err := c.Cookie(clientIDCookieName); err == nil && v != "" {
		return v
	}

	var b [16]byte
	id := c.ClientIP()
	if _, err := rand.Read(b[:]); err == nil {
		id = hex.EncodeToString(b[:])
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(clientIDCookieName, id, 0, "/", "", false, true)
	return id
}

var (
	_ services.ContentTarget = containerTarget{}
	_ services.ChartTarget   = canvasTarget{}
)
