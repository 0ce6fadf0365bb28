package utils

import (
	"strconv"     // Integer formatting for sequence ids
	"sync/atomic" // Lock-free counter

	"github.com/google/uuid" // Random ids
)

// IDGenerator hands out identifiers for records created at runtime
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs
type UUIDGenerator struct{}

// NewID returns a fresh UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues prefix1, prefix2, ... in order. Tests use it to keep ids predictable.
type SequenceGenerator struct {
	Prefix string       // Prepended to every id
	next   atomic.Int64 // Last issued value
}

// NewID returns the next id in the sequence
func (g *SequenceGenerator) NewID() string {
	return g.Prefix + strconv.FormatInt(g.next.Add(1), 10)
}
