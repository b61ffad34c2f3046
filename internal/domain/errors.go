package domain

import "errors"

var (
	// ErrInvalidDateFormat reports a date string that is not a valid YYYY-MM-DD calendar day.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrUnknownUser reports a user identifier outside the configured identity list.
	ErrUnknownUser = errors.New("unknown user")
)
