package store

import (
	"fmt"
	"sync"

	"github.com/nikolayk812/tuckshop/internal/domain"
	"github.com/nikolayk812/tuckshop/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogStore struct {
	mu    sync.Mutex
	items map[string]*domain.CatalogItem
	names []string // listing order, fixed at construction
}

// NewCatalog seeds the store with a fixed item set. The set never changes
// afterwards; only stock counts move.
func NewCatalog(items []domain.CatalogItem) (port.Catalog, error) {
	s := &catalogStore{
		items: make(map[string]*domain.CatalogItem, len(items)),
	}

	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("item name is empty")
		}
		if _, ok := s.items[item.Name]; ok {
			return nil, fmt.Errorf("duplicate item %q", item.Name)
		}
		if item.StockRemaining < 0 {
			return nil, fmt.Errorf("item %q has negative stock", item.Name)
		}
		if item.UnitPrice.Amount.IsNegative() {
			return nil, fmt.Errorf("item %q has negative price", item.Name)
		}

		copied := item
		s.items[item.Name] = &copied
		s.names = append(s.names, item.Name)
	}

	return s, nil
}

// SeedItems is the stall's default menu.
func SeedItems(unit currency.Unit) []domain.CatalogItem {
	price := func(amount int64) domain.Money {
		return domain.NewMoney(decimal.NewFromInt(amount), unit)
	}

	return []domain.CatalogItem{
		{Name: "Fishball", UnitPrice: price(10), StockRemaining: 50},
		{Name: "Siu Mai", UnitPrice: price(8), StockRemaining: 50},
		{Name: "Curry Fishball", UnitPrice: price(12), StockRemaining: 40},
		{Name: "Egg Waffle", UnitPrice: price(18), StockRemaining: 30},
		{Name: "Milk Tea", UnitPrice: price(15), StockRemaining: 60},
		{Name: "Rice Noodle Roll", UnitPrice: price(14), StockRemaining: 35},
	}
}

func (s *catalogStore) Items() []domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CatalogItem, 0, len(s.names))
	for _, name := range s.names {
		items = append(items, *s.items[name])
	}

	return items
}

func (s *catalogStore) Item(name string) (domain.CatalogItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return domain.CatalogItem{}, false
	}

	return *item, true
}

func (s *catalogStore) Reserve(name string, quantity int) error {
	if quantity <= 0 {
		return domain.ValidationError{Reason: fmt.Sprintf("quantity must be positive, got %d", quantity)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return domain.ValidationError{Reason: fmt.Sprintf("unknown item %q", name)}
	}

	if quantity > item.StockRemaining {
		return domain.StockError{
			ItemName:  name,
			Requested: quantity,
			Remaining: item.StockRemaining,
		}
	}

	item.StockRemaining -= quantity
	return nil
}

// SetUnitPrice reprices an item. The change is visible immediately: carts
// price their lines at lookup time, never from a cached value.
func (s *catalogStore) SetUnitPrice(name string, price domain.Money) error {
	if price.Amount.IsNegative() {
		return domain.ValidationError{Reason: fmt.Sprintf("price must not be negative, got %s", price.Amount)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return domain.ValidationError{Reason: fmt.Sprintf("unknown item %q", name)}
	}

	item.UnitPrice = price
	return nil
}

func (s *catalogStore) Release(name string, quantity int) error {
	if quantity <= 0 {
		return domain.ValidationError{Reason: fmt.Sprintf("quantity must be positive, got %d", quantity)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return domain.ValidationError{Reason: fmt.Sprintf("unknown item %q", name)}
	}

	item.StockRemaining += quantity
	return nil
}
