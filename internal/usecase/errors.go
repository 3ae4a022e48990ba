package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")

	// ErrPreconditionViolated marks caller-ordering bugs inside the graph
	// build. It is never retried or recovered from.
	ErrPreconditionViolated = errors.New("precondition violated")
)
