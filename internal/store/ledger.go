package store

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/tuckshop/internal/domain"
	"github.com/nikolayk812/tuckshop/internal/port"
	"go.uber.org/zap"
)

const orderNumberPrefix = "ORD-"

type orderLedger struct {
	mu      sync.Mutex
	orders  []domain.Order
	numbers map[string]struct{}
	logger  *zap.Logger
}

// NewLedger returns an empty append-only order ledger.
func NewLedger(logger *zap.Logger) port.Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orderLedger{
		numbers: make(map[string]struct{}),
		logger:  logger,
	}
}

func (l *orderLedger) Record(lines []domain.OrderLine, total domain.Money) domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	order := domain.Order{
		ID:        uuid.New(),
		Number:    l.nextNumber(),
		Lines:     append([]domain.OrderLine(nil), lines...),
		Total:     total,
		CreatedAt: time.Now(),
	}

	l.orders = append(l.orders, order)
	l.numbers[order.Number] = struct{}{}

	l.logger.Info("order recorded",
		zap.String("number", order.Number),
		zap.Int("lines", len(order.Lines)),
		zap.String("total", order.Total.Amount.StringFixed(2)),
	)

	return order
}

func (l *orderLedger) Orders() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := make([]domain.Order, len(l.orders))
	copy(orders, l.orders)

	return orders
}

// nextNumber draws a random base-36 fragment and re-draws on collision, so
// uniqueness holds for the ledger's lifetime. Caller holds l.mu.
func (l *orderLedger) nextNumber() string {
	for {
		number := orderNumberPrefix + randomBase36(8)
		if _, taken := l.numbers[number]; !taken {
			return number
		}
	}
}

func randomBase36(length int) string {
	s := strings.ToUpper(strconv.FormatUint(rand.Uint64(), 36))
	for len(s) < length {
		s = "0" + s
	}
	return s[:length]
}
