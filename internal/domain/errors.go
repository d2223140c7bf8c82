package domain

import "fmt"

// The three error kinds below cover every rejected user action. They are
// recovered where they occur: a view renders the message inline and leaves
// all state untouched.

// ValidationError reports malformed input, e.g. a non-positive quantity or
// an unknown item name.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// QuantityLimitError reports a request that would push a cart line past the
// per-item cap, whether by a single add or by merging with an existing line.
type QuantityLimitError struct {
	ItemName  string
	Requested int
	Limit     int
}

func (e QuantityLimitError) Error() string {
	return fmt.Sprintf("at most %d of %q per order, requested %d", e.Limit, e.ItemName, e.Requested)
}

// StockError reports a request for more units than the catalog has left.
type StockError struct {
	ItemName  string
	Requested int
	Remaining int
}

func (e StockError) Error() string {
	return fmt.Sprintf("not enough %q in stock: requested %d, %d left", e.ItemName, e.Requested, e.Remaining)
}
