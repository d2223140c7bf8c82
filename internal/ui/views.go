package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nikolayk812/tuckshop/internal/checkout"
	"github.com/nikolayk812/tuckshop/internal/domain"
)

// Render writes the active screen. The switch is exhaustive over the screen
// set; there is no fallback branch.
func (s *Shell) Render(w io.Writer) {
	switch s.nav.Current() {
	case domain.ScreenHome:
		s.renderHome(w)
	case domain.ScreenOrder:
		s.renderOrder(w)
	case domain.ScreenCart:
		s.renderCart(w)
	case domain.ScreenPayment:
		s.renderPayment(w)
	case domain.ScreenQueue:
		s.renderQueue(w)
	case domain.ScreenHistory:
		s.renderHistory(w)
	}
}

func (s *Shell) renderHome(w io.Writer) {
	fmt.Fprintln(w, "== Tuck Shop ==")
	fmt.Fprintln(w, "order    browse the menu")
	fmt.Fprintln(w, "queue    current waiting time")
	fmt.Fprintln(w, "history  past orders")
	fmt.Fprintln(w, "quit     leave")
}

func (s *Shell) renderOrder(w io.Writer) {
	fmt.Fprintln(w, "== Menu ==")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRICE\tSTOCK\tIN CART")
	inCart := make(map[string]int)
	for _, line := range s.cart.Lines() {
		inCart[line.ItemName] = line.Quantity
	}
	for _, item := range s.catalog.Items() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", item.Name, item.UnitPrice.Format(), item.StockRemaining, inCart[item.Name])
		if msg := s.notice(item.Name); msg != "" {
			fmt.Fprintf(tw, "  ! %s\t\t\t\n", msg)
		}
	}
	tw.Flush()

	if msg := s.notice("order"); msg != "" {
		fmt.Fprintf(w, "! %s\n", msg)
	}

	if len(s.cart.Lines()) == 0 {
		fmt.Fprintln(w, "add <quantity> <item> | cart (disabled: empty) | home")
	} else {
		fmt.Fprintln(w, "add <quantity> <item> | cart | home")
	}
}

func (s *Shell) renderCart(w io.Writer) {
	fmt.Fprintln(w, "== Cart ==")

	lines := s.cart.Lines()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, line := range lines {
		item, ok := s.catalog.Item(line.ItemName)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\tx%d\t%s\n", line.ItemName, line.Quantity, item.UnitPrice.Mul(line.Quantity).Format())
	}
	tw.Flush()

	fmt.Fprintf(w, "total: %s\n", s.cart.Total().Format())

	if msg := s.notice("cart"); msg != "" {
		fmt.Fprintf(w, "! %s\n", msg)
	}

	fmt.Fprintln(w, "remove <item> | pay | order | home")
}

func (s *Shell) renderPayment(w io.Writer) {
	fmt.Fprintln(w, "== Payment ==")

	switch s.checkout.Status() {
	case checkout.StatusConfirming:
		fmt.Fprintln(w, "processing payment...")
	case checkout.StatusSucceeded:
		s.mu.Lock()
		last := s.lastOrder
		s.mu.Unlock()
		if last != nil {
			fmt.Fprintf(w, "paid: order %s, total %s\n", last.Number, last.Total.Format())
		}
		fmt.Fprintln(w, "queue | history | home")
	case checkout.StatusIdle:
		fmt.Fprintf(w, "amount due: %s\n", s.cart.Total().Format())
		fmt.Fprintln(w, "confirm | cart | home")
	}

	if msg := s.notice("payment"); msg != "" {
		fmt.Fprintf(w, "! %s\n", msg)
	}
}

func (s *Shell) renderQueue(w io.Writer) {
	fmt.Fprintln(w, "== Queue ==")

	s.mu.Lock()
	minutes := s.queueMinutes
	s.mu.Unlock()

	fmt.Fprintf(w, "estimated wait: %d minutes\n", minutes)
	fmt.Fprintln(w, "home")
}

func (s *Shell) renderHistory(w io.Writer) {
	fmt.Fprintln(w, "== Orders ==")

	orders := s.ledger.Orders()
	if len(orders) == 0 {
		fmt.Fprintln(w, "no orders yet")
	}
	for _, order := range orders {
		fmt.Fprintf(w, "%s  %s  %s\n", order.Number, order.CreatedAt.Format("15:04:05"), order.Total.Format())
		for _, line := range order.Lines {
			fmt.Fprintf(w, "  %s x%d\n", line.ItemName, line.Quantity)
		}
	}

	fmt.Fprintln(w, "home")
}
