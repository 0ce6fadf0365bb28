package domain

import "github.com/pkg/errors" // Error constructors with stack traces

// Sentinel errors shared by the state container, the route resolver and the handlers.
// Callers wrap them with context; compare with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")    // Login lookup miss
	ErrNotFound           = errors.New("not found")              // Unknown article, product or score
	ErrEmptyInput         = errors.New("empty input")            // Blank comment submission
	ErrUnknownCategory    = errors.New("unknown sport category") // Value outside the closed set
	ErrUnknownRole        = errors.New("unknown role")           // Value outside {admin, user}
)
