package port

import (
	"github.com/nikolayk812/tuckshop/internal/domain"
)

// Catalog holds the fixed item set and its live stock counts. Reserve and
// Release are the only ways stock moves; neither may take it negative.
type Catalog interface {
	Items() []domain.CatalogItem
	Item(name string) (domain.CatalogItem, bool)
	Reserve(name string, quantity int) error
	Release(name string, quantity int) error
}

// Cart holds the current user's provisional selection. Adding reserves
// catalog stock, removing releases it, clearing does neither (used after a
// confirmed payment, when the stock is already spent).
type Cart interface {
	Add(itemName string, quantity int) error
	Remove(itemName string) bool
	Lines() []domain.CartLine
	Total() domain.Money
	Clear()
}

// Ledger is the append-only record of completed orders.
type Ledger interface {
	Record(lines []domain.OrderLine, total domain.Money) domain.Order
	Orders() []domain.Order
}
