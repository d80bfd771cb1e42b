package entities

import "time"

// ClaimState is the banner slot for one day key. A row exists only after the
// first successful claim; an absent row is represented by the unclaimed
// sentinel, never by a not-found error.
type ClaimState struct {
	DayKey    string
	Text      string
	ClaimedAt *time.Time
}

// Unclaimed returns the sentinel state for a day key with no stored row.
func Unclaimed(dayKey string) ClaimState {
	return ClaimState{DayKey: dayKey}
}

// Claimed reports whether the slot has been taken for its day key.
func (s ClaimState) Claimed() bool {
	return s.Text != ""
}
