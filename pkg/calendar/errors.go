package calendar

import "errors"

var (
	// ErrInvalidViewCount is returned when fewer than one month is requested.
	ErrInvalidViewCount = errors.New("view count must be at least 1")
	// ErrInvalidBounds is returned when the minimum date is after the maximum.
	ErrInvalidBounds = errors.New("min date is after max date")
	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("unknown selection mode")
	// ErrUnknownOrientation is returned by ParseOrientation for unrecognised names.
	ErrUnknownOrientation = errors.New("unknown orientation")
)
