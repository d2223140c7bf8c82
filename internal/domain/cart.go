package domain

import (
	"time"
)

// MaxQuantityPerItem caps how many units of one item a single cart may hold.
const MaxQuantityPerItem = 2

type Cart struct {
	Lines []CartLine
}

// CartLine is the provisional selection of one catalog item. At most one
// line exists per item name; repeated adds merge into it.
type CartLine struct {
	ItemName string
	Quantity int

	CreatedAt time.Time
}
