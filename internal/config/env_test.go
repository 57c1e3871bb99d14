package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "GIN_MODE", "DB_USER", "DB_HOST", "DB_NAME", "BOOKING_API_BASE_URL", "BOOKING_API_TIMEOUT", "BOOKING_API_RPS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("unexpected addr %q", env.AppAddr)
	}
	if env.BookingAPIBaseURL != "http://127.0.0.1:8080" {
		t.Fatalf("unexpected booking api url %q", env.BookingAPIBaseURL)
	}
	if env.BookingAPITimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", env.BookingAPITimeout)
	}
	if env.BookingAPIRPS != 0 {
		t.Fatalf("rate limit should be disabled by default, got %v", env.BookingAPIRPS)
	}
	if env.DBName != "flight_booking" || env.DBUser != "root" {
		t.Fatalf("unexpected db settings %+v", env)
	}
	if len(env.CORSAllowedOrigins) != 0 {
		t.Fatalf("expected no origins, got %v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", "0.0.0.0:9000")
	t.Setenv("BOOKING_API_BASE_URL", "http://bookings.internal/")
	t.Setenv("BOOKING_API_TIMEOUT", "3s")
	t.Setenv("BOOKING_API_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	env := LoadEnv()
	if env.BookingAPIBaseURL != "http://bookings.internal" {
		t.Fatalf("trailing slash should be trimmed, got %q", env.BookingAPIBaseURL)
	}
	if env.BookingAPITimeout != 3*time.Second || env.BookingAPIRPS != 2.5 {
		t.Fatalf("unexpected client settings %+v", env)
	}
	if len(env.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", env.CORSAllowedOrigins)
	}
}

func TestSelfURL(t *testing.T) {
	cases := map[string]string{
		":8080":          "http://127.0.0.1:8080",
		"0.0.0.0:9000":   "http://127.0.0.1:9000",
		"localhost:3000": "http://localhost:3000",
	}
	for in, want := range cases {
		if got := selfURL(in); got != want {
			t.Fatalf("selfURL(%q)=%q want %q", in, got, want)
		}
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(Env{DBUser: "u", DBPassword: "p", DBHost: "db:3306", DBName: "flights"})
	want := "u:p@tcp(db:3306)/flights?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	if dsn != want {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}
