package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/primetrade/product-dashboard/internal/core/domain"
)

// ListAccounts fetches every user account in one call; the backend offers no
// server-side pagination. A non-2xx status is a transport-class failure. A
// missing data collection yields an empty set.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	start := time.Now()
	accounts, err := c.listAccounts(ctx)
	observe("list_accounts", start, err)
	return accounts, err
}

func (c *Client) listAccounts(ctx context.Context) ([]domain.Account, error) {
	resp, err := c.do(ctx, http.MethodGet, "/user", nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("gateway: list accounts: HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var env struct {
		Data []domain.Account `json:"data"`
	}
	if err := decode(resp, &env); err != nil {
		return nil, err
	}

	if env.Data == nil {
		return []domain.Account{}, nil
	}
	return env.Data, nil
}

// DeleteAccount removes one account. The backend answers with an HTTP status
// only; there is no body envelope to classify.
func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	start := time.Now()
	err := c.deleteAccount(ctx, id)
	observe("delete_account", start, err)
	return err
}

func (c *Client) deleteAccount(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, "/user/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway: delete account %d: HTTP %d", id, resp.StatusCode)
	}
	return nil
}
