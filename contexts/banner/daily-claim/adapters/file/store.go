package fileadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	application "todaybanner/contexts/banner/daily-claim/application"
	"todaybanner/contexts/banner/daily-claim/domain/entities"
	domainerrors "todaybanner/contexts/banner/daily-claim/domain/errors"
	"todaybanner/contexts/banner/daily-claim/ports"
)

// Store persists a single JSON record describing only the current day's slot.
// Rollover is lazy: a read for a day key that differs from the stored record
// resets the record to unclaimed for that key and persists the reset before
// returning. Repeated reads for the same key do not rewrite the file.
//
// The mutex serializes claimants within this process only. There is no file
// locking, so concurrent writers from multiple processes can race on the
// read-then-write sequence. The store targets single-process local
// deployments and does not carry the transactional variant's guarantee.
type Store struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

type record struct {
	DateKey   string     `json:"dateKey"`
	Text      string     `json:"text"`
	ClaimedAt *time.Time `json:"claimedAt"`
}

func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: application.ResolveLogger(logger),
	}
}

func (s *Store) ReadState(_ context.Context, dayKey string) (entities.ClaimState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadLocked(dayKey)
	if err != nil {
		return entities.ClaimState{}, err
	}
	return rec.toEntity(), nil
}

func (s *Store) TryClaim(_ context.Context, dayKey string, text string, claimedAt time.Time) (entities.ClaimState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadLocked(dayKey)
	if err != nil {
		return entities.ClaimState{}, err
	}
	if rec.Text != "" {
		return entities.ClaimState{}, domainerrors.ErrAlreadyClaimed
	}

	at := claimedAt
	rec = record{DateKey: dayKey, Text: text, ClaimedAt: &at}
	if err := s.saveLocked(rec); err != nil {
		return entities.ClaimState{}, err
	}
	return rec.toEntity(), nil
}

// loadLocked reads the record, initializing an absent file and resetting a
// stale day key. Only one day is tracked at a time, so a rollover physically
// overwrites the previous day's record.
func (s *Store) loadLocked(dayKey string) (record, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		rec := record{DateKey: dayKey}
		if err := s.saveLocked(rec); err != nil {
			return record{}, err
		}
		s.logger.Info("banner state file initialized",
			"event", "banner_file_initialized",
			"module", "banner/daily-claim",
			"layer", "adapter",
			"path", s.path,
			"day_key", dayKey,
		)
		return rec, nil
	}
	if err != nil {
		return record{}, fmt.Errorf("read banner state file %s: %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return record{}, fmt.Errorf("%w: decode %s: %v", domainerrors.ErrRecordCorrupt, s.path, err)
	}

	if rec.DateKey != dayKey {
		rec = record{DateKey: dayKey}
		if err := s.saveLocked(rec); err != nil {
			return record{}, err
		}
		s.logger.Info("banner state rolled over",
			"event", "banner_file_rollover",
			"module", "banner/daily-claim",
			"layer", "adapter",
			"day_key", dayKey,
		)
	}
	return rec, nil
}

func (s *Store) saveLocked(rec record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create banner data dir %s: %w", dir, err)
		}
	}

	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode banner state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write banner state file %s: %w", s.path, err)
	}
	return nil
}

func (r record) toEntity() entities.ClaimState {
	return entities.ClaimState{
		DayKey:    r.DateKey,
		Text:      r.Text,
		ClaimedAt: r.ClaimedAt,
	}
}

var _ ports.ClaimStore = (*Store)(nil)
