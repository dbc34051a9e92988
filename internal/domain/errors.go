package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEvent is the root of every event validation error.
	ErrInvalidEvent = errors.New("invalid event")

	ErrUnknownEventType = fmt.Errorf("%w: unknown event type", ErrInvalidEvent)
	ErrMissingAmount    = fmt.Errorf("%w: amount required", ErrInvalidEvent)
	ErrNegativeAmount   = fmt.Errorf("%w: amount must not be negative", ErrInvalidEvent)
	ErrInvalidAmount    = fmt.Errorf("%w: malformed amount", ErrInvalidEvent)
)
