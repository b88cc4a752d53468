package cryptors

import "errors"

var (
	// ErrInvalidArgument is returned for a malformed PIN, rotor, rotor count or stack.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLookup is returned when a character cannot be substituted by a rotor.
	ErrLookup = errors.New("character lookup failed")

	// ErrIO is returned when the rotor store or a backup cannot be read or written.
	ErrIO = errors.New("i/o failure")
)
