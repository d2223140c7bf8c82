// Package nav tracks which screen is currently displayed.
package nav

import (
	"sync"

	"github.com/nikolayk812/tuckshop/internal/domain"
)

// Controller holds the single current-screen state. Transitions are
// unconditional: any guard (such as "cart is disabled while empty") belongs
// to the view that triggers the transition, not here.
type Controller struct {
	mu      sync.Mutex
	current domain.Screen
}

func New() *Controller {
	return &Controller{current: domain.ScreenHome}
}

func (c *Controller) Current() domain.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

func (c *Controller) Go(screen domain.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = screen
}
