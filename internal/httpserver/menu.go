package httpserver

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/internal/service/search"
	"github.com/bistroboss/backend/internal/util"
	"github.com/bistroboss/backend/pkg/logging"
)

type MenuHTTP struct {
	Repo  *repo.GormRepo
	ES    *elasticsearch.Client
	Index string
}

func (h *MenuHTTP) ListMenu(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Repo.ListMenu(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_menu_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create_item")

	var item models.MenuItem
	if err := c.Bind(&item); err != nil {
		l.Warn("create_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	item.ID = 0

	created, err := h.Repo.CreateMenuItem(ctx, &item)
	if err != nil {
		l.Error("create_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("create_item_success", "menu_item_id", created.ID)
	return c.JSON(http.StatusOK, created)
}

func (h *MenuHTTP) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete_item")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Repo.DeleteMenuItem(ctx, uint(id)); err != nil {
		if repo.IsNotFound(err) {
			return c.JSON(http.StatusOK, echo.Map{"deletedCount": 0})
		}
		l.Error("delete_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{"deletedCount": 1})
}

// SearchMenu handles GET /menu/search. Answers 503 when no search backend is
// configured.
func (h *MenuHTTP) SearchMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	if h.ES == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search unavailable")
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Paginate(page, size)

	total, items, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
}
