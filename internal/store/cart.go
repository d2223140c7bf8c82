package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/tuckshop/internal/domain"
	"github.com/nikolayk812/tuckshop/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartStore struct {
	mu      sync.Mutex
	catalog port.Catalog
	lines   []domain.CartLine
	unit    currency.Unit
}

// NewCart couples the cart to the catalog: adding a line reserves stock,
// removing a line releases it. The cap per item is domain.MaxQuantityPerItem.
func NewCart(catalog port.Catalog) (port.Cart, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}

	s := &cartStore{catalog: catalog}
	if items := catalog.Items(); len(items) > 0 {
		s.unit = items[0].UnitPrice.Currency
	}

	return s, nil
}

func (s *cartStore) Add(itemName string, quantity int) error {
	if quantity <= 0 {
		return domain.ValidationError{Reason: fmt.Sprintf("quantity must be positive, got %d", quantity)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := 0
	if idx := s.lineIndex(itemName); idx >= 0 {
		existing = s.lines[idx].Quantity
	}

	if quantity+existing > domain.MaxQuantityPerItem {
		return domain.QuantityLimitError{
			ItemName:  itemName,
			Requested: quantity + existing,
			Limit:     domain.MaxQuantityPerItem,
		}
	}

	// Reservation doubles as the stock check; on error nothing has changed.
	if err := s.catalog.Reserve(itemName, quantity); err != nil {
		return fmt.Errorf("catalog.Reserve: %w", err)
	}

	if idx := s.lineIndex(itemName); idx >= 0 {
		s.lines[idx].Quantity += quantity
		return nil
	}

	s.lines = append(s.lines, domain.CartLine{
		ItemName:  itemName,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	})

	return nil
}

func (s *cartStore) Remove(itemName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.lineIndex(itemName)
	if idx < 0 {
		return false
	}

	// Release cannot fail for a quantity we reserved earlier.
	_ = s.catalog.Release(itemName, s.lines[idx].Quantity)
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)

	return true
}

func (s *cartStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)

	return lines
}

// Total prices every line at the catalog's current unit price, not the price
// seen when the line was added.
func (s *cartStore) Total() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		item, ok := s.catalog.Item(line.ItemName)
		if !ok {
			continue
		}
		total = total.Add(item.UnitPrice.Amount.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return domain.NewMoney(total, s.unit)
}

// Clear drops all lines without touching stock. Used after payment
// confirmation, when the reserved stock has become part of an order.
func (s *cartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// callers hold s.mu
func (s *cartStore) lineIndex(itemName string) int {
	for i, line := range s.lines {
		if line.ItemName == itemName {
			return i
		}
	}
	return -1
}
