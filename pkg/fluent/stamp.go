package fluent

import (
	"time"

	"github.com/google/uuid"
)

// Stamp identifies a single wrapper or chain instance. Every derived
// instance carries a fresh stamp.
type Stamp struct {
	id        uuid.UUID
	createdAt time.Time
}

func NewStamp() Stamp {
	return Stamp{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func (s Stamp) Id() uuid.UUID {
	return s.id
}

func (s Stamp) CreatedAt() time.Time {
	return s.createdAt
}
