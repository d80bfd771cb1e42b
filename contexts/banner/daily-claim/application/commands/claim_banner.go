package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "todaybanner/contexts/banner/daily-claim/application"
	"todaybanner/contexts/banner/daily-claim/domain/entities"
	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
	"todaybanner/contexts/banner/daily-claim/domain/services"
	"todaybanner/contexts/banner/daily-claim/ports"
)

type ClaimBannerCommand struct {
	Text string
}

type ClaimBannerResult struct {
	State    entities.ClaimState
	Conflict bool
}

type ClaimBannerUseCase struct {
	Store         ports.ClaimStore
	Days          services.DayKeyResolver
	Clock         ports.Clock
	MaxTextLength int
	Logger        *slog.Logger
}

// Execute runs the claim workflow in this order:
// 1) trim + validate input
// 2) resolve today's day key
// 3) conditional insert via the store
// 4) on a lost race, re-read the authoritative winner.
// A losing claim is a final outcome for that day key; there are no retries.
func (u ClaimBannerUseCase) Execute(ctx context.Context, cmd ClaimBannerCommand) (ClaimBannerResult, error) {
	logger := application.ResolveLogger(u.Logger)

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return ClaimBannerResult{}, domainerrors.ErrEmptyText
	}
	if u.MaxTextLength > 0 && len([]rune(text)) > u.MaxTextLength {
		return ClaimBannerResult{}, domainerrors.ErrTextTooLong
	}

	now := u.now()
	dayKey := u.Days.DayKey(now)

	logger.Info("banner claim started",
		"event", "claim_banner_started",
		"module", "banner/daily-claim",
		"layer", "application",
		"day_key", dayKey,
		"text_length", len([]rune(text)),
	)

	state, err := u.Store.TryClaim(ctx, dayKey, text, now)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyClaimed) {
			// The loser must see who actually won, not just that it lost.
			current, readErr := u.Store.ReadState(ctx, dayKey)
			if readErr != nil {
				logger.Error("banner claim conflict re-read failed",
					"event", "claim_banner_conflict_read_failed",
					"module", "banner/daily-claim",
					"layer", "application",
					"day_key", dayKey,
					"error", readErr.Error(),
				)
				return ClaimBannerResult{}, readErr
			}
			logger.Info("banner claim lost to existing winner",
				"event", "claim_banner_conflict",
				"module", "banner/daily-claim",
				"layer", "application",
				"day_key", dayKey,
			)
			return ClaimBannerResult{State: current, Conflict: true}, nil
		}

		logger.Error("banner claim failed",
			"event", "claim_banner_failed",
			"module", "banner/daily-claim",
			"layer", "application",
			"day_key", dayKey,
			"error", err.Error(),
		)
		return ClaimBannerResult{}, err
	}

	logger.Info("banner claimed",
		"event", "claim_banner_succeeded",
		"module", "banner/daily-claim",
		"layer", "application",
		"day_key", dayKey,
	)
	return ClaimBannerResult{State: state}, nil
}

func (u ClaimBannerUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now()
	}
	return time.Now()
}
