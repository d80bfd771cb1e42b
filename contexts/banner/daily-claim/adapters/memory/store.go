package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	application "todaybanner/contexts/banner/daily-claim/application"
	"todaybanner/contexts/banner/daily-claim/domain/entities"
	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
	"todaybanner/contexts/banner/daily-claim/ports"
)

// Store is an in-memory adapter implementing the claim port for local runtime
// and tests. It is not intended as production persistence. Claim arbitration
// happens under one mutex, so concurrent TryClaim calls for the same day key
// admit exactly one winner.
type Store struct {
	mu     sync.RWMutex
	states map[string]entities.ClaimState
	logger *slog.Logger

	// NowFunc backs the Clock port and may be swapped in tests to move the
	// current day key.
	NowFunc func() time.Time
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		states:  make(map[string]entities.ClaimState),
		logger:  application.ResolveLogger(logger),
		NowFunc: time.Now,
	}
}

func (s *Store) ReadState(_ context.Context, dayKey string) (entities.ClaimState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.states[dayKey]; ok {
		return state, nil
	}
	return entities.Unclaimed(dayKey), nil
}

func (s *Store) TryClaim(_ context.Context, dayKey string, text string, claimedAt time.Time) (entities.ClaimState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.states[dayKey]; ok && existing.Claimed() {
		return entities.ClaimState{}, domainerrors.ErrAlreadyClaimed
	}

	at := claimedAt
	state := entities.ClaimState{
		DayKey:    dayKey,
		Text:      text,
		ClaimedAt: &at,
	}
	s.states[dayKey] = state
	return state, nil
}

func (s *Store) Now() time.Time {
	return s.NowFunc()
}

var _ ports.ClaimStore = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
