package queries

import (
	"context"
	"log/slog"
	"time"

	application "todaybanner/contexts/banner/daily-claim/application"
	"todaybanner/contexts/banner/daily-claim/domain/entities"
	"todaybanner/contexts/banner/daily-claim/domain/services"
	"todaybanner/contexts/banner/daily-claim/ports"
)

type GetStateResult struct {
	State     entities.ClaimState
	ServerNow time.Time
	Timezone  string
}

type GetStateUseCase struct {
	Store  ports.ClaimStore
	Days   services.DayKeyResolver
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute resolves today's day key and reads the slot. Rollover is lazy: the
// store itself normalizes a stale or absent row to the unclaimed state for the
// requested key.
func (u GetStateUseCase) Execute(ctx context.Context) (GetStateResult, error) {
	logger := application.ResolveLogger(u.Logger)

	now := u.now()
	dayKey := u.Days.DayKey(now)

	state, err := u.Store.ReadState(ctx, dayKey)
	if err != nil {
		logger.Error("banner state read failed",
			"event", "get_state_failed",
			"module", "banner/daily-claim",
			"layer", "application",
			"day_key", dayKey,
			"error", err.Error(),
		)
		return GetStateResult{}, err
	}

	return GetStateResult{
		State:     state,
		ServerNow: now,
		Timezone:  u.Days.Timezone(),
	}, nil
}

func (u GetStateUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now()
	}
	return time.Now()
}
