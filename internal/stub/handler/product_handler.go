package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/stub/store"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

type productRequest struct {
	Name        string `json:"product_name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	InStock     int    `json:"in_stock" validate:"gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive Archived"`
}

func (r productRequest) product() domain.Product {
	status := r.Status
	if status == "" {
		status = domain.StatusActive
	}
	return domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		InStock:     r.InStock,
		Status:      status,
	}
}

// List returns every product. The cache flag is false on the first read
// after a mutation and true on every repeat read, mirroring the cache
// layer the production API fronts its catalog with.
func (h *ProductHandler) List(c echo.Context) error {
	products, cached := h.store.ListProducts()
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"cache":   cached,
		"data":    map[string]any{"products": products},
	})
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created := h.store.CreateProduct(req.product())

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Product created successfully",
		"data":    map[string]any{"created": created},
	})
}

// Update replaces an existing product's fields.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.store.UpdateProduct(id, req.product())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Product updated successfully",
		"data":    map[string]any{"updated": updated},
	})
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.store.DeleteProduct(id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Product deleted successfully",
	})
}
