package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/core/ports"
)

// listEnvelope is the wire shape of GET /product.
type listEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Cache   bool   `json:"cache"`
	Data    *struct {
		Products []domain.Product `json:"products"`
	} `json:"data"`
}

// mutationEnvelope is the wire shape of create/update/delete responses.
type mutationEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    *struct {
		Created *domain.Product `json:"created"`
		Updated *domain.Product `json:"updated"`
	} `json:"data"`
}

// ListProducts fetches the whole catalog. The error discriminator wins over
// everything else in the body; a body without the products collection is
// malformed and handled like a transport failure.
func (c *Client) ListProducts(ctx context.Context) (ports.ProductList, error) {
	start := time.Now()
	list, err := c.listProducts(ctx)
	observe("list_products", start, err)
	return list, err
}

func (c *Client) listProducts(ctx context.Context) (ports.ProductList, error) {
	resp, err := c.do(ctx, http.MethodGet, "/product", nil)
	if err != nil {
		return ports.ProductList{}, err
	}

	var env listEnvelope
	if err := decode(resp, &env); err != nil {
		return ports.ProductList{}, err
	}

	if env.Error != "" {
		return ports.ProductList{}, domain.UnauthenticatedError(env.Message)
	}
	if env.Data == nil || env.Data.Products == nil {
		return ports.ProductList{}, domain.ErrMalformedResponse
	}

	return ports.ProductList{Products: env.Data.Products, FromCache: env.Cache}, nil
}

// CreateProduct persists a new record and returns the created product and the
// server's message. The caller must never place a client placeholder value in
// p.ID; the backend assigns the real identifier.
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, string, error) {
	start := time.Now()
	created, msg, err := c.mutateProduct(ctx, http.MethodPost, "/product", p)
	observe("create_product", start, err)
	return created, msg, err
}

// UpdateProduct replaces the record with identifier id.
func (c *Client) UpdateProduct(ctx context.Context, id int, p domain.Product) (domain.Product, string, error) {
	start := time.Now()
	updated, msg, err := c.mutateProduct(ctx, http.MethodPatch, productPath(id), p)
	observe("update_product", start, err)
	return updated, msg, err
}

func (c *Client) mutateProduct(ctx context.Context, method, path string, p domain.Product) (domain.Product, string, error) {
	resp, err := c.do(ctx, method, path, p)
	if err != nil {
		return domain.Product{}, "", err
	}

	var env mutationEnvelope
	if err := decode(resp, &env); err != nil {
		return domain.Product{}, "", err
	}

	if env.Error != "" {
		return domain.Product{}, "", domain.UnauthenticatedError(env.Message)
	}
	if !env.Success {
		return domain.Product{}, "", &domain.RemoteError{Message: env.Message}
	}

	switch {
	case env.Data != nil && env.Data.Created != nil:
		return *env.Data.Created, env.Message, nil
	case env.Data != nil && env.Data.Updated != nil:
		return *env.Data.Updated, env.Message, nil
	}
	return domain.Product{}, "", domain.ErrMalformedResponse
}

// DeleteProduct removes the record with identifier id.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	start := time.Now()
	err := c.deleteProduct(ctx, id)
	observe("delete_product", start, err)
	return err
}

func (c *Client) deleteProduct(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, productPath(id), nil)
	if err != nil {
		return err
	}

	var env mutationEnvelope
	if err := decode(resp, &env); err != nil {
		return err
	}

	if env.Error != "" {
		return domain.UnauthenticatedError(env.Message)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Failed to delete product"
		}
		return &domain.RemoteError{Message: msg}
	}
	return nil
}

func productPath(id int) string {
	return "/product/" + strconv.Itoa(id)
}
