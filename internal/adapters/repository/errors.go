package repository

import "errors"

// Sentinel kinds for population store errors. Unknown identifier lookups
// are precondition violations and surface as distinct error kinds; numeric
// edge cases never error.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrClubNotFound   = errors.New("club not found")
)
