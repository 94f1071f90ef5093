package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/pkg/tokens"
)

const principalKey = "principal_email"

type Middleware struct {
	JWTSecret []byte
	Repo      *repo.GormRepo
}

func New(secret []byte, r *repo.GormRepo) *Middleware {
	return &Middleware{JWTSecret: secret, Repo: r}
}

// PrincipalEmail returns the verified identity RequireAuth attached to the
// request. Callers must branch on the error before touching the email.
func PrincipalEmail(c echo.Context) (string, error) {
	v := c.Get(principalKey)
	email, ok := v.(string)
	if !ok || email == "" {
		return "", errors.New("no principal on request")
	}
	return email, nil
}

// RequireAuth is the authentication gate. Every failure branch returns
// immediately, so no downstream handler can run on an unverified request.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(principalKey, claims.Email)
		return next(c)
	}
}

// RequireAdmin composes after RequireAuth on admin-only routes. The role is
// read from the user directory on every request, never cached, so a revoked
// admin is refused on their next call.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, err := PrincipalEmail(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
		}

		user, err := m.Repo.GetUserByEmail(c.Request().Context(), email)
		if err != nil {
			if repo.IsNotFound(err) {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "user lookup failed")
		}
		if user.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}

		return next(c)
	}
}

// RequireSelf guards identity-scoped routes: the principal must equal the
// named path parameter.
func (m *Middleware) RequireSelf(param string) echo.MiddlewareFunc {
	return m.requireSelf(func(c echo.Context) string { return c.Param(param) })
}

// RequireSelfQuery is RequireSelf for a query parameter carrier.
func (m *Middleware) RequireSelfQuery(param string) echo.MiddlewareFunc {
	return m.requireSelf(func(c echo.Context) string { return c.QueryParam(param) })
}

func (m *Middleware) requireSelf(identity func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := PrincipalEmail(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
			}
			if identity(c) != email {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			return next(c)
		}
	}
}
