// Package checkout drives the payment flow: validating the cart against
// live stock, then running the single simulated confirmation step that turns
// the cart into a ledger order.
package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/tuckshop/internal/domain"
	"github.com/nikolayk812/tuckshop/internal/port"
	"go.uber.org/zap"
)

// Status is the payment flow state. There is no failure state: the simulated
// processor always succeeds after the configured delay.
type Status int

const (
	StatusIdle Status = iota
	StatusConfirming
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusConfirming:
		return "confirming"
	case StatusSucceeded:
		return "succeeded"
	}
	return "idle"
}

// ErrConfirmInFlight rejects a repeat submission while a confirmation is
// still pending. At most one completion is ever scheduled.
var ErrConfirmInFlight = errors.New("confirmation already in flight")

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	mu      sync.Mutex
	status  Status
	timer   *time.Timer
	delay   time.Duration
	catalog port.Catalog
	cart    port.Cart
	ledger  port.Ledger
	logger  *zap.Logger
}

func New(catalog port.Catalog, cart port.Cart, ledger port.Ledger, delay time.Duration, logger *zap.Logger) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart is nil")
	}
	if ledger == nil {
		return nil, fmt.Errorf("ledger is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		status:  StatusIdle,
		delay:   delay,
		catalog: catalog,
		cart:    cart,
		ledger:  ledger,
		logger:  logger,
	}, nil
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// ProceedToPayment re-validates every cart line against the stock the
// catalog currently reports. The happy path mutates nothing: stock was
// already deducted when the lines were added. A violation means stock moved
// underneath the cart since then.
func (s *Service) ProceedToPayment() error {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	for _, line := range lines {
		item, ok := s.catalog.Item(line.ItemName)
		if !ok {
			return domain.ValidationError{Reason: fmt.Sprintf("unknown item %q", line.ItemName)}
		}
		if line.Quantity > item.StockRemaining {
			return domain.StockError{
				ItemName:  line.ItemName,
				Requested: line.Quantity,
				Remaining: item.StockRemaining,
			}
		}
	}

	return nil
}

// Confirm starts the simulated payment. It schedules exactly one completion
// after the configured delay; once the completion fires the cart is emptied,
// the order is on the ledger and onDone receives it. There is no
// cancellation and no retry.
func (s *Service) Confirm(onDone func(domain.Order)) error {
	s.mu.Lock()

	if s.status == StatusConfirming {
		s.mu.Unlock()
		return ErrConfirmInFlight
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.mu.Unlock()
		return ErrEmptyCart
	}

	s.status = StatusConfirming
	s.timer = time.AfterFunc(s.delay, func() {
		s.complete(onDone)
	})
	s.mu.Unlock()

	s.logger.Info("payment confirmation started", zap.Duration("delay", s.delay))

	return nil
}

// Reset returns the flow to idle for the next purchase. It is a no-op while
// a confirmation is pending.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusSucceeded {
		s.status = StatusIdle
	}
}

func (s *Service) complete(onDone func(domain.Order)) {
	s.mu.Lock()

	lines := s.cart.Lines()
	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		item, _ := s.catalog.Item(line.ItemName)
		orderLines = append(orderLines, domain.OrderLine{
			ItemName:  line.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order := s.ledger.Record(orderLines, s.cart.Total())

	// Stock stays untouched here: it was deducted line by line at add time.
	s.cart.Clear()
	s.status = StatusSucceeded
	s.mu.Unlock()

	s.logger.Info("payment confirmed", zap.String("order", order.Number))

	if onDone != nil {
		onDone(order)
	}
}
