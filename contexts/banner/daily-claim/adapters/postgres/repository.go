package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"todaybanner/contexts/banner/daily-claim/domain/entities"
	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
	"todaybanner/contexts/banner/daily-claim/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository is the transactional store variant. At-most-one-winner semantics
// are delegated entirely to the primary key on date_key: TryClaim is a bare
// insert, and the constraint serializes concurrent inserts for the same key.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type claimModel struct {
	DateKey   string    `gorm:"column:date_key;primaryKey"`
	Text      string    `gorm:"column:text;not null"`
	ClaimedAt time.Time `gorm:"column:claimed_at;not null"`
}

func (claimModel) TableName() string {
	return "daily_banner_claims"
}

// Migrate provisions the claims table. The service owns this single table, so
// schema management lives with the adapter instead of external migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&claimModel{}); err != nil {
		return fmt.Errorf("migrate daily_banner_claims: %w", err)
	}
	return nil
}

func (r *Repository) ReadState(ctx context.Context, dayKey string) (entities.ClaimState, error) {
	var row claimModel
	err := r.db.WithContext(ctx).
		Where("date_key = ?", dayKey).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Unclaimed(dayKey), nil
		}
		return entities.ClaimState{}, r.logError("banner_repo_read_state_failed", err, "day_key", dayKey)
	}
	return row.toEntity(), nil
}

func (r *Repository) TryClaim(ctx context.Context, dayKey string, text string, claimedAt time.Time) (entities.ClaimState, error) {
	row := claimModel{
		DateKey:   dayKey,
		Text:      text,
		ClaimedAt: claimedAt.UTC(),
	}
	create := r.db.WithContext(ctx).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return entities.ClaimState{}, domainerrors.ErrAlreadyClaimed
		}
		return entities.ClaimState{}, r.logError("banner_repo_try_claim_failed", create.Error, "day_key", dayKey)
	}
	return row.toEntity(), nil
}

func (m claimModel) toEntity() entities.ClaimState {
	at := m.ClaimedAt
	return entities.ClaimState{
		DayKey:    m.DateKey,
		Text:      m.Text,
		ClaimedAt: &at,
	}
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "banner/daily-claim",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("banner postgres repository error", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.ClaimStore = (*Repository)(nil)
