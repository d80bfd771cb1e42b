package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
)

func TestReadStateAbsentReturnsUnclaimed(t *testing.T) {
	store := NewStore(nil)

	state, err := store.ReadState(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("read should not fail: %v", err)
	}
	if state.DayKey != "2024-06-01" || state.Text != "" || state.ClaimedAt != nil {
		t.Fatalf("expected unclaimed sentinel, got %+v", state)
	}
}

func TestTryClaimSecondClaimLoses(t *testing.T) {
	store := NewStore(nil)
	now := time.Now()

	if _, err := store.TryClaim(context.Background(), "2024-06-01", "Hello", now); err != nil {
		t.Fatalf("first claim should win: %v", err)
	}
	_, err := store.TryClaim(context.Background(), "2024-06-01", "World", now)
	if !errors.Is(err, domainerrors.ErrAlreadyClaimed) {
		t.Fatalf("expected already-claimed, got %v", err)
	}

	state, err := store.ReadState(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("read should not fail: %v", err)
	}
	if state.Text != "Hello" {
		t.Fatalf("winner must be preserved, got %q", state.Text)
	}
}

func TestTryClaimConcurrentExactlyOneWinner(t *testing.T) {
	store := NewStore(nil)
	const claimants = 32

	var wg sync.WaitGroup
	results := make(chan error, claimants)
	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.TryClaim(context.Background(), "2024-06-01", fmt.Sprintf("claimant-%d", i), time.Now())
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	winners, losers := 0, 0
	for err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, domainerrors.ErrAlreadyClaimed):
			losers++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 || losers != claimants-1 {
		t.Fatalf("expected exactly one winner, got %d winners and %d losers", winners, losers)
	}
}

func TestClaimsForDifferentDayKeysAreIndependent(t *testing.T) {
	store := NewStore(nil)
	now := time.Now()

	if _, err := store.TryClaim(context.Background(), "2024-06-01", "Hello", now); err != nil {
		t.Fatalf("claim for first day should win: %v", err)
	}
	if _, err := store.TryClaim(context.Background(), "2024-06-02", "World", now); err != nil {
		t.Fatalf("claim for next day should win: %v", err)
	}
}
