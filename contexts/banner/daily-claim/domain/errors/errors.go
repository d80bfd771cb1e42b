package errors

import "errors"

var (
	ErrEmptyText      = errors.New("banner text is empty")
	ErrTextTooLong    = errors.New("banner text exceeds the maximum length")
	ErrAlreadyClaimed = errors.New("banner is already claimed for today")
	ErrRecordCorrupt  = errors.New("persisted banner record is corrupt")
)
