package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/service"
	"github.com/bistroboss/backend/pkg/logging"
)

type StatsHTTP struct {
	Svc *service.StatsService
}

// AdminStats handles GET /admin-stats.
func (h *StatsHTTP) AdminStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stats.admin_stats")

	stats, err := h.Svc.AdminStats(ctx)
	if err != nil {
		l.Error("admin_stats_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, stats)
}
