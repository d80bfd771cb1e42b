package services

import (
	"testing"
	"time"
)

func TestDayKeyUsesZoneWallClock(t *testing.T) {
	// 16:30 UTC is already the next calendar day in Seoul (UTC+9).
	instant := time.Date(2024, 6, 1, 16, 30, 0, 0, time.UTC)

	seoul, err := NewDayKeyResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("resolver should load Asia/Seoul: %v", err)
	}
	if got := seoul.DayKey(instant); got != "2024-06-02" {
		t.Fatalf("expected 2024-06-02 in Seoul, got %s", got)
	}

	utc, err := NewDayKeyResolver("UTC")
	if err != nil {
		t.Fatalf("resolver should load UTC: %v", err)
	}
	if got := utc.DayKey(instant); got != "2024-06-01" {
		t.Fatalf("expected 2024-06-01 in UTC, got %s", got)
	}
}

func TestDayKeyIgnoresInstantZone(t *testing.T) {
	loc := time.FixedZone("UTC-11", -11*60*60)
	instant := time.Date(2024, 5, 31, 20, 0, 0, 0, loc) // 07:00 UTC next day

	seoul, err := NewDayKeyResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("resolver should load Asia/Seoul: %v", err)
	}
	if got := seoul.DayKey(instant); got != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %s", got)
	}
}

func TestNewDayKeyResolverRejectsUnknownZone(t *testing.T) {
	if _, err := NewDayKeyResolver("Not/AZone"); err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
}

func TestTimezoneReportsConfiguredZone(t *testing.T) {
	seoul, err := NewDayKeyResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("resolver should load Asia/Seoul: %v", err)
	}
	if got := seoul.Timezone(); got != "Asia/Seoul" {
		t.Fatalf("expected Asia/Seoul, got %s", got)
	}
}
