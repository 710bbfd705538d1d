package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/access"
	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// ListState is the catalog controller's state machine:
// loading → {populated, empty} → errored (terminal for this mount).
type ListState int

const (
	ListLoading ListState = iota
	ListPopulated
	ListEmpty
	ListErrored
)

// ProductList drives the catalog view. It owns the fetched rows, the
// empty-state flag, and the cache-served indicator.
type ProductList struct {
	products ports.ProductGateway
	session  *domain.Session
	nav      ports.Navigator
	notify   ports.Notifier
	log      zerolog.Logger

	mu        sync.Mutex
	state     ListState
	rows      []domain.Product
	fromCache bool
	detached  bool

	pending sync.WaitGroup
}

func NewProductList(products ports.ProductGateway, session *domain.Session, nav ports.Navigator, notify ports.Notifier, log zerolog.Logger) *ProductList {
	return &ProductList{
		products: products,
		session:  session,
		nav:      nav,
		notify:   notify,
		log:      log,
		state:    ListLoading,
	}
}

// Load performs the mount-time fetch. Every failure path is terminal for this
// mount and produces a user-visible notice:
//   - unauthenticated discriminator: session-expired notice, go to login,
//     the list is never rendered;
//   - transport or malformed response: generic notice, go to login;
//   - otherwise the rows are stored, with Empty when zero of them came back.
//
// The cache indicator is recorded independently, for display only.
func (c *ProductList) Load(ctx context.Context) {
	list, err := c.products.ListProducts(ctx)

	c.mu.Lock()
	if c.detached {
		// The view is gone; acting on this result would navigate or notify
		// for a screen the user already left.
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.state = ListErrored
		c.rows = nil
		c.mu.Unlock()

		if errors.Is(err, domain.ErrUnauthenticated) {
			c.notify.Error(err.Error(), "Your session has expired. Please log in again.")
		} else {
			c.log.Warn().Err(err).Msg("product list load failed")
			c.notify.Error("Error", "Failed to load products")
		}
		c.nav.Go(ports.Route{Name: ports.RouteLogin})
		return
	}

	c.rows = list.Products
	c.fromCache = list.FromCache
	if len(list.Products) == 0 {
		c.state = ListEmpty
	} else {
		c.state = ListPopulated
	}
	c.mu.Unlock()
}

// Delete removes the row with the given identifier from local state
// immediately, then fires the network delete in the background. A failed
// delete only produces a notice: the row is not restored, so the local list
// can run ahead of the server until the next full load. The in-flight call
// is never aborted.
func (c *ProductList) Delete(ctx context.Context, id int) {
	c.mu.Lock()
	kept := c.rows[:0:0]
	for _, p := range c.rows {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.rows = kept
	if len(kept) == 0 {
		c.state = ListEmpty
	} else {
		c.state = ListPopulated
	}
	c.mu.Unlock()

	c.notify.Success("Deleted", "Product deleted successfully")

	c.pending.Add(1)
	go func(ctx context.Context) {
		defer c.pending.Done()
		if err := c.products.DeleteProduct(ctx, id); err != nil {
			c.log.Warn().Int("product_id", id).Err(err).
				Msg("delete failed after local removal; local list is ahead of the server until the next reload")
			if c.alive() {
				c.notify.Error("Error", deleteFailureMessage(err))
			}
		}
	}(context.WithoutCancel(ctx))
}

func deleteFailureMessage(err error) string {
	if re := domain.AsRemote(err); re != nil {
		return re.Error()
	}
	return "Failed to delete product"
}

// Detach marks the view as unmounted. Results that arrive afterwards are
// discarded without touching state or navigating.
func (c *ProductList) Detach() {
	c.mu.Lock()
	c.detached = true
	c.mu.Unlock()
}

func (c *ProductList) alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.detached
}

// Wait blocks until all background deletes have resolved. Used by tests and
// on shutdown.
func (c *ProductList) Wait() {
	c.pending.Wait()
}

// CanManage reports whether create/edit/delete affordances may be rendered
// for the resolved session. Presentation-layer check only; the backend
// re-checks authorization on every mutating call.
func (c *ProductList) CanManage() bool {
	return access.CanManageProducts(c.session)
}

// Session returns the identity the view renders ("Logged in as ...").
func (c *ProductList) Session() *domain.Session {
	return c.session
}

func (c *ProductList) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Products returns a copy of the current rows in display order.
func (c *ProductList) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Product, len(c.rows))
	copy(out, c.rows)
	return out
}

// FromCache reports whether the server marked the last payload as
// cache-served. Display only; no behavioral effect.
func (c *ProductList) FromCache() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fromCache
}
