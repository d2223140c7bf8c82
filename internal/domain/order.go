package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable record of a completed purchase. Lines and total are
// snapshotted from the cart at confirmation time and never change afterwards.
type Order struct {
	ID     uuid.UUID
	Number string
	Lines  []OrderLine
	Total  Money

	CreatedAt time.Time
}

type OrderLine struct {
	ItemName  string
	Quantity  int
	UnitPrice Money
}
