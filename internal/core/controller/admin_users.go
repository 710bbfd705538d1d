package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/primetrade/product-dashboard/internal/core/access"
	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// adminPageSize is the fixed client-side page size: the backend transfers the
// whole account set every time, pagination is pure slicing.
const adminPageSize = 10

// AdminState is the admin panel's state machine.
type AdminState int

const (
	AdminLoading AdminState = iota
	AdminReady
	AdminErrored
	// AdminDenied means the resolved session is not an administrator; the
	// view must never render its content.
	AdminDenied
)

// AdminUsers drives the admin panel: fetches the full account list on mount,
// paginates it locally, and deletes accounts with confirmation.
type AdminUsers struct {
	accounts ports.AccountGateway
	session  *domain.Session
	nav      ports.Navigator
	notify   ports.Notifier
	log      zerolog.Logger

	state AdminState
	all   []domain.Account
	page  int
}

func NewAdminUsers(accounts ports.AccountGateway, session *domain.Session, nav ports.Navigator, notify ports.Notifier, log zerolog.Logger) *AdminUsers {
	return &AdminUsers{
		accounts: accounts,
		session:  session,
		nav:      nav,
		notify:   notify,
		log:      log,
		state:    AdminLoading,
		page:     1,
	}
}

// Load refuses non-admin sessions outright (permission-denied notice, then
// redirect home) and otherwise fetches every account in one call.
func (c *AdminUsers) Load(ctx context.Context) {
	if !access.CanViewAdmin(c.session) {
		c.state = AdminDenied
		c.notify.Error("Access Denied", "You do not have permission to access the Admin Panel.")
		c.nav.Go(ports.Route{Name: ports.RouteCatalog})
		return
	}

	list, err := c.accounts.ListAccounts(ctx)
	if err != nil {
		c.state = AdminErrored
		c.log.Warn().Err(err).Msg("account list load failed")
		c.notify.Error("Error", err.Error())
		return
	}

	c.all = list
	c.page = 1
	c.state = AdminReady
}

// TotalPages is ceil(n/pageSize), never below 1.
func (c *AdminUsers) TotalPages() int {
	n := (len(c.all) + adminPageSize - 1) / adminPageSize
	if n < 1 {
		return 1
	}
	return n
}

// Page is the 1-based current page index.
func (c *AdminUsers) Page() int { return c.page }

// SetPage moves to a page. Requests below 1 or above the last page are
// no-ops.
func (c *AdminUsers) SetPage(n int) {
	if n < 1 || n > c.TotalPages() {
		return
	}
	c.page = n
}

// Visible returns the slice of accounts for the current page.
func (c *AdminUsers) Visible() []domain.Account {
	start := (c.page - 1) * adminPageSize
	if start >= len(c.all) {
		return []domain.Account{}
	}
	end := start + adminPageSize
	if end > len(c.all) {
		end = len(c.all)
	}
	out := make([]domain.Account, end-start)
	copy(out, c.all[start:end])
	return out
}

// DeleteAccount asks for confirmation, deletes on the server, and only then
// removes the account from the working set. If the deleted row was the sole
// row of the current page and the page is not the first, the view steps back
// one page so it is never left past the new end.
func (c *AdminUsers) DeleteAccount(ctx context.Context, id int) {
	if !c.notify.Confirm("Are you sure?", "This action cannot be undone.") {
		return
	}

	if err := c.accounts.DeleteAccount(ctx, id); err != nil {
		c.log.Warn().Int("user_id", id).Err(err).Msg("account delete failed")
		c.notify.Error("Error", "Failed to delete user")
		return
	}

	visibleBefore := len(c.Visible())

	kept := c.all[:0:0]
	for _, a := range c.all {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	removed := len(kept) != len(c.all)
	c.all = kept

	if removed && visibleBefore == 1 && c.page > 1 {
		c.page--
	}

	c.notify.Success("Success", "User deleted successfully.")
}

func (c *AdminUsers) State() AdminState { return c.state }

// Total is the size of the full working set.
func (c *AdminUsers) Total() int { return len(c.all) }
