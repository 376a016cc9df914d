package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidCreds     = errors.New("invalid credentials")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrGenerationFailed = errors.New("generation failed")

	// Both satisfy errors.Is(err, ErrNotFound).
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrPersonaNotFound = fmt.Errorf("persona %w", ErrNotFound)
)
