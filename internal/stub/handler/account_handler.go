package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/primetrade/product-dashboard/internal/stub/store"
)

// AccountHandler serves the admin-only user administration endpoints.
type AccountHandler struct {
	store *store.Store
}

func NewAccountHandler(s *store.Store) *AccountHandler {
	return &AccountHandler{store: s}
}

// List returns every registered account.
func (h *AccountHandler) List(c echo.Context) error {
	accounts := h.store.ListUsers()
	return c.JSON(http.StatusOK, map[string]any{
		"data": accounts,
	})
}

// Delete removes an account. The response carries no body; callers key
// off the status code alone.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.store.DeleteUser(id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
