package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "todaybanner/contexts/banner/daily-claim/application"
	"todaybanner/contexts/banner/daily-claim/application/commands"
	"todaybanner/contexts/banner/daily-claim/application/queries"
	"todaybanner/contexts/banner/daily-claim/domain/entities"
	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
	httptransport "todaybanner/contexts/banner/daily-claim/transport/http"
)

const (
	claimedMessage  = "Banner claimed"
	conflictMessage = "Today's banner has already been claimed. Try again after reset."
)

type Handler struct {
	GetState    queries.GetStateUseCase
	ClaimBanner commands.ClaimBannerUseCase
	Logger      *slog.Logger
}

// GetStateHandler godoc
// @Summary Get today's banner state
// @Description Returns the current day's claim state plus server time and timezone.
// @Tags daily-claim
// @Produce json
// @Success 200 {object} httptransport.StateResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/state [get]
func (h Handler) GetStateHandler(ctx context.Context) (httptransport.StateResponse, error) {
	result, err := h.GetState.Execute(ctx)
	if err != nil {
		return httptransport.StateResponse{}, err
	}

	state := mapState(result.State)
	return httptransport.StateResponse{
		DateKey:   state.DateKey,
		Text:      state.Text,
		ClaimedAt: state.ClaimedAt,
		ServerNow: result.ServerNow.UTC().Format(time.RFC3339),
		Timezone:  result.Timezone,
	}, nil
}

// ClaimBannerHandler godoc
// @Summary Claim today's banner
// @Description First valid claim of the day wins; later claims receive 409 with the winner's state.
// @Tags daily-claim
// @Accept json
// @Produce json
// @Param request body httptransport.ClaimRequest true "Banner text"
// @Success 200 {object} httptransport.ClaimResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ClaimResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/claim [post]
//
// On a conflict the returned response is populated with the authoritative
// winner alongside domainerrors.ErrAlreadyClaimed, so the transport edge can
// send a 409 body without a second round trip.
func (h Handler) ClaimBannerHandler(ctx context.Context, req httptransport.ClaimRequest) (httptransport.ClaimResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("claim request received",
		"event", "http_claim_received",
		"module", "banner/daily-claim",
		"layer", "transport",
	)

	result, err := h.ClaimBanner.Execute(ctx, commands.ClaimBannerCommand{Text: req.Text})
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}

	if result.Conflict {
		return httptransport.ClaimResponse{
			Message: conflictMessage,
			State:   mapState(result.State),
		}, domainerrors.ErrAlreadyClaimed
	}

	return httptransport.ClaimResponse{
		Message: claimedMessage,
		State:   mapState(result.State),
	}, nil
}

func mapState(state entities.ClaimState) httptransport.StateDTO {
	dto := httptransport.StateDTO{
		DateKey: state.DayKey,
		Text:    state.Text,
	}
	if state.ClaimedAt != nil {
		at := state.ClaimedAt.UTC().Format(time.RFC3339)
		dto.ClaimedAt = &at
	}
	return dto
}
