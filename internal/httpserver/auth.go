package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/middleware/auth"
	"github.com/bistroboss/backend/internal/service"
	"github.com/bistroboss/backend/internal/transport"
	"github.com/bistroboss/backend/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

// IssueToken handles POST /jwt.
func (h *AuthHTTP) IssueToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.issue_token")

	var req transport.IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("issue_token_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.IssueToken(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("issue_token_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("issue_token_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("issue_token_success")
	return c.JSON(http.StatusOK, transport.IssueTokenResponse{Token: token})
}

// AdminCheck handles GET /users/admin/:email. The identity guard has already
// matched the path email against the principal; the answer reflects only the
// stored role.
func (h *AuthHTTP) AdminCheck(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.admin_check")

	email, err := auth.PrincipalEmail(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
	}

	isAdmin, err := h.Svc.IsAdmin(ctx, email)
	if err != nil {
		l.Error("admin_check_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.AdminCheckResponse{IsAdmin: isAdmin})
}
