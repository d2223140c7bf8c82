// Package ui renders the tuck shop screens as text and translates typed
// commands into operations on the stores. Every rejected action is shown as
// an inline message on the screen it happened on; nothing propagates further.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nikolayk812/tuckshop/internal/checkout"
	"github.com/nikolayk812/tuckshop/internal/domain"
	"github.com/nikolayk812/tuckshop/internal/nav"
	"github.com/nikolayk812/tuckshop/internal/port"
	"github.com/nikolayk812/tuckshop/internal/queuetime"
	"go.uber.org/zap"
)

// QueueSettings are the parameters for each mount of the queue-time screen.
type QueueSettings struct {
	InitialMinutes int
	PollInterval   time.Duration
	MaxIncrement   int
}

type Shell struct {
	nav      *nav.Controller
	catalog  port.Catalog
	cart     port.Cart
	ledger   port.Ledger
	checkout *checkout.Service
	queue    QueueSettings
	logger   *zap.Logger

	mu           sync.Mutex
	notices      map[string]string
	lastOrder    *domain.Order
	queueSim     *queuetime.Simulator
	queueMinutes int
	queueDone    chan struct{}
}

func NewShell(navc *nav.Controller, catalog port.Catalog, cart port.Cart, ledger port.Ledger, svc *checkout.Service, queue QueueSettings, logger *zap.Logger) (*Shell, error) {
	if navc == nil || catalog == nil || cart == nil || ledger == nil || svc == nil {
		return nil, fmt.Errorf("all collaborators are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Shell{
		nav:      navc,
		catalog:  catalog,
		cart:     cart,
		ledger:   ledger,
		checkout: svc,
		queue:    queue,
		logger:   logger,
		notices:  make(map[string]string),
	}, nil
}

// Run reads commands line by line until EOF or "quit", rendering the current
// screen after every command. The queue feed is torn down on exit.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	defer s.stopQueue()

	s.Render(out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			s.Render(out)
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		s.Exec(line)
		s.Render(out)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Err: %w", err)
	}

	return nil
}

// Exec runs one typed command. Navigation commands work from any screen;
// item commands belong to the screen that shows them.
func (s *Shell) Exec(line string) {
	s.mu.Lock()
	s.notices = make(map[string]string)
	s.mu.Unlock()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "go":
		target := ""
		if len(fields) > 1 {
			target = fields[1]
		}
		s.navigate(domain.ParseScreen(target))
	case "home", "order", "cart", "payment", "queue", "history":
		s.navigate(domain.ParseScreen(fields[0]))
	case "add":
		s.execAdd(fields[1:])
	case "remove":
		s.execRemove(fields[1:])
	case "pay":
		s.execPay()
	case "confirm":
		s.execConfirm()
	default:
		s.setNotice(s.nav.Current().String(), fmt.Sprintf("unknown command %q", fields[0]))
	}
}

func (s *Shell) navigate(target domain.Screen) {
	current := s.nav.Current()
	if current == target {
		return
	}

	// The catalog view shows "cart" greyed out while the cart is empty; the
	// controller itself never blocks a transition.
	if current == domain.ScreenOrder && target == domain.ScreenCart && len(s.cart.Lines()) == 0 {
		s.setNotice("order", "cart is empty, add something first")
		return
	}

	if current == domain.ScreenQueue {
		s.stopQueue()
	}
	if target == domain.ScreenQueue {
		s.startQueue()
	}
	if target == domain.ScreenPayment {
		s.checkout.Reset()
	}

	s.nav.Go(target)
}

func (s *Shell) execAdd(args []string) {
	if s.nav.Current() != domain.ScreenOrder {
		s.setNotice(s.nav.Current().String(), "add works on the order screen")
		return
	}
	if len(args) < 2 {
		s.setNotice("order", "usage: add <quantity> <item>")
		return
	}

	quantity, err := strconv.Atoi(args[0])
	if err != nil {
		s.setNotice("order", fmt.Sprintf("quantity %q is not a number", args[0]))
		return
	}
	itemName := strings.Join(args[1:], " ")

	if err := s.cart.Add(itemName, quantity); err != nil {
		s.setNotice(itemName, userMessage(err))
		return
	}
}

func (s *Shell) execRemove(args []string) {
	if s.nav.Current() != domain.ScreenCart {
		s.setNotice(s.nav.Current().String(), "remove works on the cart screen")
		return
	}
	if len(args) == 0 {
		s.setNotice("cart", "usage: remove <item>")
		return
	}

	itemName := strings.Join(args, " ")
	if !s.cart.Remove(itemName) {
		s.setNotice("cart", fmt.Sprintf("%q is not in the cart", itemName))
	}
}

func (s *Shell) execPay() {
	if s.nav.Current() != domain.ScreenCart {
		s.setNotice(s.nav.Current().String(), "pay works on the cart screen")
		return
	}

	if err := s.checkout.ProceedToPayment(); err != nil {
		s.setNotice("cart", userMessage(err))
		return
	}

	s.navigate(domain.ScreenPayment)
}

// execConfirm only records the completed order; the payment view picks it up
// on the next render. Completion runs on the timer goroutine, so it must not
// touch the output writer.
func (s *Shell) execConfirm() {
	if s.nav.Current() != domain.ScreenPayment {
		s.setNotice(s.nav.Current().String(), "confirm works on the payment screen")
		return
	}

	err := s.checkout.Confirm(func(order domain.Order) {
		s.mu.Lock()
		s.lastOrder = &order
		s.mu.Unlock()
	})
	if err != nil {
		s.setNotice("payment", userMessage(err))
	}
}

func (s *Shell) startQueue() {
	sim, err := queuetime.New(s.queue.InitialMinutes, s.queue.PollInterval, s.queue.MaxIncrement)
	if err != nil {
		s.logger.Warn("queue simulator not started", zap.Error(err))
		return
	}

	ch, err := sim.Start(context.Background())
	if err != nil {
		s.logger.Warn("queue simulator not started", zap.Error(err))
		return
	}

	done := make(chan struct{})

	s.mu.Lock()
	s.queueSim = sim
	s.queueMinutes = s.queue.InitialMinutes
	s.queueDone = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		for minutes := range ch {
			s.mu.Lock()
			s.queueMinutes = minutes
			s.mu.Unlock()
		}
	}()
}

func (s *Shell) stopQueue() {
	s.mu.Lock()
	sim := s.queueSim
	done := s.queueDone
	s.queueSim = nil
	s.queueDone = nil
	s.mu.Unlock()

	if sim == nil {
		return
	}

	sim.Stop()
	<-done
}

func (s *Shell) setNotice(key, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices[key] = message
}

func (s *Shell) notice(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notices[key]
}

// userMessage strips wrapping added on the way up; the typed errors already
// read like messages for the user.
func userMessage(err error) string {
	var validation domain.ValidationError
	if errors.As(err, &validation) {
		return validation.Error()
	}

	var limit domain.QuantityLimitError
	if errors.As(err, &limit) {
		return limit.Error()
	}

	var stock domain.StockError
	if errors.As(err, &stock) {
		return stock.Error()
	}

	return err.Error()
}
