package companion

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid companion request")
	ErrUnknownAdventure = errors.New("unknown adventure")
)

type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest.Error(), e.Field, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidRequest
}
