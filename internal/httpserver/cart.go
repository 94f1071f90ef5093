package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/pkg/logging"
)

type CartHTTP struct {
	Repo *repo.GormRepo
}

// ListCart handles GET /carts?email=. The identity guard has already matched
// the query email against the principal.
func (h *CartHTTP) ListCart(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")
	items, err := h.Repo.ListCart(ctx, email)
	if err != nil {
		logging.FromContext(ctx).Error("list_cart_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var item models.CartItem
	if err := c.Bind(&item); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if item.Email == "" {
		l.Warn("add_to_cart_error", "status", 400, "reason", "email required")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	item.ID = 0

	created, err := h.Repo.AddCartItem(ctx, &item)
	if err != nil {
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, created)
}

// DeleteFromCart takes only the row id; the route carries no ownership check
// (kept as the accessor is specified, see DESIGN.md open questions).
func (h *CartHTTP) DeleteFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_from_cart")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.Repo.DeleteCartItem(ctx, uint(id))
	if err != nil {
		l.Error("delete_from_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{"deletedCount": deleted})
}
