package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightbooking/internal/bookingapi"
	intconfig "flightbooking/internal/config"
	router "flightbooking/internal/http"
	"flightbooking/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	limit := rate.Inf
	if env.BookingAPIRPS > 0 {
		limit = rate.Limit(env.BookingAPIRPS)
	}
	client := bookingapi.NewClient(
		bookingapi.WithBaseUrl(env.BookingAPIBaseURL),
		bookingapi.WithTimeout(env.BookingAPITimeout),
		bookingapi.WithRateLimiter(rate.NewLimiter(limit, 1)),
	)

	r := router.NewRouter(env, router.Deps{
		Bookings: client,
		Flights:  repositories.FlightRepository{DB: db},
		Revenue:  repositories.RevenueRepository{DB: db},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s (booking api %s)", env.AppAddr, env.BookingAPIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
