package usecase

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternal             = errors.New("internal error")
	ErrJobSourceUnavailable = errors.New("job source unavailable")
	ErrAIRateLimited        = errors.New("assistant rate limited")
	ErrAIUnavailable        = errors.New("assistant unavailable")
)
