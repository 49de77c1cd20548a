package workflow

import "errors"

var (
	// ErrNotFound means the id references no known recommendation.
	ErrNotFound = errors.New("recommendation not found")

	// ErrInvalidState means the recommendation is already resolved.
	ErrInvalidState = errors.New("recommendation already resolved")

	// ErrEmptyReason means Reject was called without a reason.
	ErrEmptyReason = errors.New("rejection reason must not be empty")
)
