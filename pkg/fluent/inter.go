package fluent

import (
	"time"

	"github.com/google/uuid"
)

// Stamped is implemented by every wrapper and chain instance.
type Stamped interface {
	// Id returns the instance identity
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Calculator is the terminal surface of a deferred computation
type Calculator[T any] interface {
	Stamped
	// Calculate evaluates the accumulated computation and returns the result
	Calculate() (T, error)
}
