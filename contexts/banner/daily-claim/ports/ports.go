package ports

import (
	"context"
	"time"

	"todaybanner/contexts/banner/daily-claim/domain/entities"
)

// ClaimStore persists the daily banner slot. Implementations must normalize
// "no stored row" to the unclaimed sentinel on reads, and must report a lost
// claim race as domainerrors.ErrAlreadyClaimed rather than a generic storage
// error, whether the loss is discovered via a uniqueness constraint or via a
// pre-check.
type ClaimStore interface {
	ReadState(ctx context.Context, dayKey string) (entities.ClaimState, error)
	TryClaim(ctx context.Context, dayKey string, text string, claimedAt time.Time) (entities.ClaimState, error)
}

type Clock interface {
	Now() time.Time
}
