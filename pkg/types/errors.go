package types

import "errors"

// Domain errors translated into user-visible replies by the command layer
var (
	// ErrUnknownCommand is returned when a token resolves to no command
	ErrUnknownCommand = errors.New("unknown command")
	// ErrProductNotFound is returned when a menu lookup misses
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound is returned when no profile exists for a user id
	ErrUserNotFound = errors.New("user not found")
)
