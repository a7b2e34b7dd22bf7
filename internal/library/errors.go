package library

import "errors"

// Errors returned by playlist mutations. All are user-correctable and
// should be surfaced, not swallowed.
var (
	ErrTitleRequired   = errors.New("playlist title is required")
	ErrDuplicateTitle  = errors.New("a playlist with this name already exists")
	ErrInvalidPlaylist = errors.New("invalid playlist")
)
