package utils

import (
	"testing"
	"time"
)

func TestFormatVND(t *testing.T) {
	cases := map[float64]string{
		0:         "0 VND",
		950:       "950 VND",
		1800000:   "1.800.000 VND",
		5200000.4: "5.200.000 VND",
		-2000:     "-2.000 VND",
	}
	for in, want := range cases {
		if got := FormatVND(in); got != want {
			t.Fatalf("FormatVND(%v)=%q want %q", in, got, want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth(" 2022-12 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Year() != 2022 || m.Month() != time.December {
		t.Fatalf("unexpected month %v", m)
	}
	if FormatMonth(m) != "2022-12" {
		t.Fatalf("FormatMonth mismatch: %s", FormatMonth(m))
	}
	if _, err := ParseMonth("12/2022"); err == nil {
		t.Fatalf("expected error for bad layout")
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2022, 12, 1, 13, 0, 0, 0, time.Local)
	if got := FormatDateTime(ts); got != "2022-12-01 13:00:00" {
		t.Fatalf("FormatDateTime=%q", got)
	}
}
