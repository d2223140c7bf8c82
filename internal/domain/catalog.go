package domain

// CatalogItem is one purchasable stall item, identified by name.
// StockRemaining counts units not yet reserved by a cart or order.
type CatalogItem struct {
	Name           string
	UnitPrice      Money
	StockRemaining int
}
