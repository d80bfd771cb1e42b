package fileadapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "state.json")
	return NewStore(path, nil), path
}

func TestReadStateInitializesAbsentFile(t *testing.T) {
	store, path := newTestStore(t)

	state, err := store.ReadState(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("first read should initialize the file: %v", err)
	}
	if state.DayKey != "2024-06-01" || state.Claimed() {
		t.Fatalf("expected unclaimed state for today, got %+v", state)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("state file should exist after first read: %v", err)
	}
}

func TestClaimRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	claimedAt := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	claimed, err := store.TryClaim(context.Background(), "2024-06-01", "Hello", claimedAt)
	if err != nil {
		t.Fatalf("first claim should win: %v", err)
	}
	if claimed.Text != "Hello" || claimed.ClaimedAt == nil {
		t.Fatalf("claimed state incomplete: %+v", claimed)
	}

	read, err := store.ReadState(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("read after claim should not fail: %v", err)
	}
	if read.Text != "Hello" || read.ClaimedAt == nil || !read.ClaimedAt.Equal(claimedAt) {
		t.Fatalf("round trip mismatch: %+v", read)
	}
}

func TestTryClaimReportsConflict(t *testing.T) {
	store, _ := newTestStore(t)
	now := time.Now()

	if _, err := store.TryClaim(context.Background(), "2024-06-01", "Hello", now); err != nil {
		t.Fatalf("first claim should win: %v", err)
	}
	_, err := store.TryClaim(context.Background(), "2024-06-01", "World", now)
	if !errors.Is(err, domainerrors.ErrAlreadyClaimed) {
		t.Fatalf("expected already-claimed, got %v", err)
	}
}

func TestRolloverResetsAndIsIdempotent(t *testing.T) {
	store, path := newTestStore(t)

	if _, err := store.TryClaim(context.Background(), "2024-06-01", "Hello", time.Now()); err != nil {
		t.Fatalf("claim should win: %v", err)
	}

	state, err := store.ReadState(context.Background(), "2024-06-02")
	if err != nil {
		t.Fatalf("rollover read should not fail: %v", err)
	}
	if state.DayKey != "2024-06-02" || state.Claimed() {
		t.Fatalf("expected reset to unclaimed for the new key, got %+v", state)
	}

	// The reset persists on the first mismatch only; further reads for the
	// same key leave the file untouched.
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state file: %v", err)
	}
	if _, err := store.ReadState(context.Background(), "2024-06-02"); err != nil {
		t.Fatalf("repeated read should not fail: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state file: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("repeated reads for the same key must not rewrite the record")
	}
}

func TestCorruptRecordSurfacesStorageError(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("prepare dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("prepare corrupt file: %v", err)
	}

	_, err := store.ReadState(context.Background(), "2024-06-01")
	if !errors.Is(err, domainerrors.ErrRecordCorrupt) {
		t.Fatalf("expected corrupt-record error, got %v", err)
	}
}
