package ui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nikolayk812/tuckshop/internal/checkout"
	"github.com/nikolayk812/tuckshop/internal/domain"
	"github.com/nikolayk812/tuckshop/internal/nav"
	"github.com/nikolayk812/tuckshop/internal/port"
	"github.com/nikolayk812/tuckshop/internal/store"
	"github.com/nikolayk812/tuckshop/internal/ui"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	nav     *nav.Controller
	catalog port.Catalog
	cart    port.Cart
	ledger  port.Ledger
	svc     *checkout.Service
	shell   *ui.Shell
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog, err := store.NewCatalog([]domain.CatalogItem{
		{Name: "Fishball", UnitPrice: domain.NewMoney(decimal.NewFromInt(10), currency.HKD), StockRemaining: 5},
		{Name: "Siu Mai", UnitPrice: domain.NewMoney(decimal.NewFromInt(8), currency.HKD), StockRemaining: 5},
	})
	require.NoError(t, err)

	cart, err := store.NewCart(catalog)
	require.NoError(t, err)

	ledger := store.NewLedger(zap.NewNop())

	svc, err := checkout.New(catalog, cart, ledger, 10*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	navc := nav.New()
	shell, err := ui.NewShell(navc, catalog, cart, ledger, svc, ui.QueueSettings{
		InitialMinutes: 5,
		PollInterval:   5 * time.Millisecond,
		MaxIncrement:   3,
	}, zap.NewNop())
	require.NoError(t, err)

	return &fixture{nav: navc, catalog: catalog, cart: cart, ledger: ledger, svc: svc, shell: shell}
}

func (f *fixture) exec(commands ...string) string {
	var out bytes.Buffer
	for _, command := range commands {
		f.shell.Exec(command)
	}
	f.shell.Render(&out)
	return out.String()
}

func TestShellBrowseAndAdd(t *testing.T) {
	f := newFixture(t)

	out := f.exec("order", "add 2 Fishball")

	assert.Equal(t, domain.ScreenOrder, f.nav.Current())
	assert.Contains(t, out, "Fishball")
	assert.Contains(t, out, "Siu Mai")

	lines := f.cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestShellInlineErrors(t *testing.T) {
	f := newFixture(t)

	// over the per-item cap: rejected with an inline message, state unchanged
	out := f.exec("order", "add 3 Fishball")
	assert.Contains(t, out, `at most 2 of "Fishball" per order`)
	assert.Empty(t, f.cart.Lines())
	assert.Equal(t, domain.ScreenOrder, f.nav.Current())

	out = f.exec("add 0 Fishball")
	assert.Contains(t, out, "quantity must be positive")

	out = f.exec("add x Fishball")
	assert.Contains(t, out, `quantity "x" is not a number`)
}

func TestShellCartDisabledWhileEmpty(t *testing.T) {
	f := newFixture(t)

	out := f.exec("order", "cart")

	// stays on the order screen; the view explains why
	assert.Equal(t, domain.ScreenOrder, f.nav.Current())
	assert.Contains(t, out, "cart is empty")
	assert.Contains(t, out, "cart (disabled: empty)")
}

func TestShellRemove(t *testing.T) {
	f := newFixture(t)

	f.exec("order", "add 2 Fishball", "cart", "remove Fishball")

	assert.Empty(t, f.cart.Lines())
	item, ok := f.catalog.Item("Fishball")
	require.True(t, ok)
	assert.Equal(t, 5, item.StockRemaining)

	out := f.exec("remove Fishball")
	assert.Contains(t, out, `"Fishball" is not in the cart`)
}

func TestShellFullPurchase(t *testing.T) {
	f := newFixture(t)

	out := f.exec("order", "add 2 Fishball", "add 1 Siu Mai", "cart")
	assert.Contains(t, out, "$")
	assert.Contains(t, out, "28.00")

	f.exec("pay")
	assert.Equal(t, domain.ScreenPayment, f.nav.Current())

	f.exec("confirm")

	require.Eventually(t, func() bool {
		return len(f.ledger.Orders()) == 1
	}, time.Second, 5*time.Millisecond)

	orders := f.ledger.Orders()
	assert.True(t, decimal.NewFromInt(28).Equal(orders[0].Total.Amount))
	assert.Empty(t, f.cart.Lines())

	out = f.exec("history")
	assert.Contains(t, out, orders[0].Number)
}

func TestShellPayBlockedWhenStockMoved(t *testing.T) {
	f := newFixture(t)

	f.exec("order", "add 2 Fishball", "cart")

	// the rest of the stock disappears underneath the cart
	require.NoError(t, f.catalog.Reserve("Fishball", 3))

	out := f.exec("pay")
	assert.Equal(t, domain.ScreenCart, f.nav.Current())
	assert.Contains(t, out, "not enough")
	require.Len(t, f.cart.Lines(), 1)
}

func TestShellQueueScreenLifecycle(t *testing.T) {
	f := newFixture(t)

	out := f.exec("queue")
	assert.Equal(t, domain.ScreenQueue, f.nav.Current())
	assert.Contains(t, out, "estimated wait")

	// wait for at least one periodic update, then leave; goleak (TestMain)
	// proves the feed goroutine is gone
	time.Sleep(20 * time.Millisecond)
	f.exec("home")
	assert.Equal(t, domain.ScreenHome, f.nav.Current())
}

func TestShellRunQuits(t *testing.T) {
	f := newFixture(t)

	var out bytes.Buffer
	in := strings.NewReader("order\nadd 1 Fishball\nquit\n")

	require.NoError(t, f.shell.Run(t.Context(), in, &out))
	assert.Contains(t, out.String(), "Fishball")
	require.Len(t, f.cart.Lines(), 1)
}

func TestShellUnknownScreenFallsBackHome(t *testing.T) {
	f := newFixture(t)

	f.exec("order")
	f.exec("go nowhere")
	assert.Equal(t, domain.ScreenHome, f.nav.Current())
}
