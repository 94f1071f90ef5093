package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/pkg/tokens"
)

var testSecret = []byte("test-jwt-secret")

func newTestMiddleware(t *testing.T) *Middleware {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repo.Migrate(db))

	return New(testSecret, repo.New(db))
}

func newContext(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(ran *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*ran = true
		return c.NoContent(http.StatusOK)
	}
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	return he.Code
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)
	c, _ := newContext(t, "")

	var ran bool
	err := m.RequireAuth(okHandler(&ran))(c)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))
	assert.False(t, ran, "handler must not run on an unauthenticated request")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	c := e.NewContext(req, httptest.NewRecorder())

	var ran bool
	err := m.RequireAuth(okHandler(&ran))(c)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))
	assert.False(t, ran)
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)

	token, err := tokens.Sign("a@x.com", testSecret)
	require.NoError(t, err)
	c, _ := newContext(t, token[:len(token)-2]+"xx")

	var ran bool
	gateErr := m.RequireAuth(okHandler(&ran))(c)

	require.Error(t, gateErr)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, gateErr))
	assert.False(t, ran)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)

	token, err := tokens.SignWithExpiry("a@x.com", testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	c, _ := newContext(t, token)

	var ran bool
	gateErr := m.RequireAuth(okHandler(&ran))(c)

	require.Error(t, gateErr)
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, gateErr))
	assert.False(t, ran)
}

func TestRequireAuth_ValidToken_SetsPrincipal(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)

	token, err := tokens.Sign("a@x.com", testSecret)
	require.NoError(t, err)
	c, _ := newContext(t, token)

	var ran bool
	var principal string
	handler := func(c echo.Context) error {
		ran = true
		principal, _ = PrincipalEmail(c)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.RequireAuth(handler)(c))
	assert.True(t, ran)
	assert.Equal(t, "a@x.com", principal)
}

func TestRequireAdmin_GrantsOnlyStoredAdminRole(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)
	require.NoError(t, m.Repo.DB.Create(&models.User{Email: "admin@x.com", Role: models.RoleAdmin}).Error)
	require.NoError(t, m.Repo.DB.Create(&models.User{Email: "user@x.com", Role: models.RoleCustomer}).Error)

	tests := []struct {
		name     string
		email    string
		wantCode int
	}{
		{name: "admin passes", email: "admin@x.com", wantCode: 0},
		{name: "customer forbidden", email: "user@x.com", wantCode: http.StatusForbidden},
		{name: "absent record forbidden", email: "ghost@x.com", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := tokens.Sign(tt.email, testSecret)
			require.NoError(t, err)
			c, _ := newContext(t, token)

			var ran bool
			gateErr := m.RequireAuth(m.RequireAdmin(okHandler(&ran)))(c)

			if tt.wantCode == 0 {
				require.NoError(t, gateErr)
				assert.True(t, ran)
				return
			}
			require.Error(t, gateErr)
			assert.Equal(t, tt.wantCode, httpCode(t, gateErr))
			assert.False(t, ran)
		})
	}
}

func TestRequireAdmin_ReadsRoleFreshEachRequest(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)
	user := models.User{Email: "a@x.com", Role: models.RoleCustomer}
	require.NoError(t, m.Repo.DB.Create(&user).Error)

	token, err := tokens.Sign("a@x.com", testSecret)
	require.NoError(t, err)

	var ran bool
	c, _ := newContext(t, token)
	gateErr := m.RequireAuth(m.RequireAdmin(okHandler(&ran)))(c)
	require.Error(t, gateErr)
	assert.Equal(t, http.StatusForbidden, httpCode(t, gateErr))

	// promotion takes effect on the very next request with the same token
	require.NoError(t, m.Repo.PromoteUser(c.Request().Context(), user.ID))

	c2, _ := newContext(t, token)
	require.NoError(t, m.RequireAuth(m.RequireAdmin(okHandler(&ran)))(c2))
	assert.True(t, ran)
}

func TestRequireSelf(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)

	token, err := tokens.Sign("a@x.com", testSecret)
	require.NoError(t, err)

	run := func(paramEmail string) (bool, error) {
		c, _ := newContext(t, token)
		c.SetParamNames("email")
		c.SetParamValues(paramEmail)

		var ran bool
		err := m.RequireAuth(m.RequireSelf("email")(okHandler(&ran)))(c)
		return ran, err
	}

	ran, err := run("a@x.com")
	require.NoError(t, err)
	assert.True(t, ran)

	ran, err = run("b@x.com")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))
	assert.False(t, ran, "guarded logic must never run on identity mismatch")
}

func TestRequireSelfQuery(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware(t)

	token, err := tokens.Sign("a@x.com", testSecret)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/carts?email=b@x.com", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	var ran bool
	gateErr := m.RequireAuth(m.RequireSelfQuery("email")(okHandler(&ran)))(c)

	require.Error(t, gateErr)
	assert.Equal(t, http.StatusForbidden, httpCode(t, gateErr))
	assert.False(t, ran)
}
