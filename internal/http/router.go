package api

import (
	"log"
	stdhttp "net/http"

	intconfig "flightbooking/internal/config"
	h "flightbooking/internal/http/handlers"
	"flightbooking/internal/http/middleware"
	"flightbooking/internal/repositories"
	"flightbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Bookings services.BookingSource
	Flights  repositories.FlightRepository
	Revenue  repositories.RevenueRepository
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	bookings := h.NewBookingHandler(deps.Bookings, deps.Flights)
	stats := h.StatsHandler{Revenue: deps.Revenue}

	// Pages
	r.GET("/", func(c *gin.Context) { c.Redirect(stdhttp.StatusFound, "/search_booking") })
	r.GET("/search_booking", bookings.SearchPage)
	r.GET("/search_booking/filter", bookings.Filter)
	r.GET("/flight/:id", bookings.FlightPage)
	r.GET("/stats", stats.Page)
	r.GET("/stats/chart", stats.Chart)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.GET("/search_booking", bookings.SearchBookings)
		api.GET("/flights/:id", bookings.GetFlight)

		statsGroup := api.Group("/stats")
		statsGroup.GET("/revenue", stats.GetRevenue)
		statsGroup.GET("/revenue.pdf", stats.GetRevenuePDF)
	}

	h.SetRouter(r)
	return r
}
