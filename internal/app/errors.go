package service

import "errors"

var (
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("engine already started")

	// ErrNotStarted is returned when season processing is requested
	// before the pipeline is running.
	ErrNotStarted = errors.New("engine not started")
)
