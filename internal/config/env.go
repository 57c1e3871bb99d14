package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	// BookingAPIBaseURL is where the booking filter fetches /api/search_booking from.
	// Defaults to this server itself.
	BookingAPIBaseURL string
	BookingAPITimeout time.Duration
	// BookingAPIRPS limits outgoing booking-list requests per second; 0 disables the limit.
	BookingAPIRPS float64

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("BOOKING_API_BASE_URL")), "/")
	if baseURL == "" {
		baseURL = selfURL(appAddr)
	}

	timeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("BOOKING_API_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	var rps float64
	if raw := strings.TrimSpace(os.Getenv("BOOKING_API_RPS")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			rps = v
		}
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            ginMode,
		DBUser:             envOr("DB_USER", "root"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBHost:             envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:             envOr("DB_NAME", "flight_booking"),
		BookingAPIBaseURL:  baseURL,
		BookingAPITimeout:  timeout,
		BookingAPIRPS:      rps,
		CORSAllowedOrigins: origins,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// selfURL turns a listen address such as ":8080" or "0.0.0.0:8080" into a loopback URL.
func selfURL(addr string) string {
	host, port, ok := strings.Cut(addr, ":")
	if !ok {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" || host == "[::]" {
		host = "127.0.0.1"
	}
	return "http://" + host + ":" + port
}
