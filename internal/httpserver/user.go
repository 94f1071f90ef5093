package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/events"
	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/pkg/logging"
)

type UserHTTP struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Repo.ListUsers(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_users_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser is self-registration: inserting an already-known email is a
// no-op that still answers 200.
func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var user models.User
	if err := c.Bind(&user); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if user.Email == "" {
		l.Warn("create_user_error", "status", 400, "reason", "email required")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	user.ID = 0
	user.Role = models.RoleCustomer

	created, err := h.Repo.EnsureUser(ctx, &user)
	if err != nil {
		l.Error("create_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if created {
		h.Producer.Publish(ctx, events.TopicUsers, user.Email, map[string]any{
			"type":  "user_registered",
			"email": user.Email,
		})
	}

	return c.JSON(http.StatusOK, user)
}

// PromoteUser handles PATCH /users/:id/admin. Promotion only; no demotion
// path exists.
func (h *UserHTTP) PromoteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.promote_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Repo.PromoteUser(ctx, uint(id)); err != nil {
		if repo.IsNotFound(err) {
			return c.JSON(http.StatusOK, echo.Map{"modifiedCount": 0})
		}
		l.Error("promote_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": 1})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.Repo.DeleteUser(ctx, uint(id))
	if err != nil {
		l.Error("delete_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{"deletedCount": deleted})
}
