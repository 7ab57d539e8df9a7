package development

import "errors"

// Sentinel kinds for development errors.
var (
	ErrInvalidKey   = errors.New("invalid development key")
	ErrInvalidTrait = errors.New("invalid trait key")
)
