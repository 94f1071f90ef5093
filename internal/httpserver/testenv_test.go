package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authmw "github.com/bistroboss/backend/internal/middleware/auth"
	"github.com/bistroboss/backend/internal/models"
	"github.com/bistroboss/backend/internal/repo"
	"github.com/bistroboss/backend/internal/service"
	"github.com/bistroboss/backend/pkg/tokens"
)

var testSecret = []byte("test-jwt-secret")

type fakeIntentCreator struct {
	lastAmount int64
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amountMinor int64, _ string) (string, error) {
	f.lastAmount = amountMinor
	return "cs_test_secret", nil
}

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Repo   *repo.GormRepo
	Intent *fakeIntentCreator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repo.Migrate(db))

	store := repo.New(db)
	intent := &fakeIntentCreator{}

	authSvc := &service.AuthService{Repo: store, JWTSecret: testSecret}
	paymentSvc := &service.PaymentService{Repo: store, Gateway: intent}
	statsSvc := &service.StatsService{Repo: store}

	e := echo.New()
	Register(e, &Deps{
		AuthMW:         authmw.New(testSecret, store),
		AuthHandler:    &AuthHTTP{Svc: authSvc},
		UserHandler:    &UserHTTP{Repo: store},
		MenuHandler:    &MenuHTTP{Repo: store},
		ReviewHandler:  &ReviewHTTP{Repo: store},
		CartHandler:    &CartHTTP{Repo: store},
		PaymentHandler: &PaymentHTTP{Svc: paymentSvc},
		StatsHandler:   &StatsHTTP{Svc: statsSvc},
	})

	return &testEnv{T: t, E: e, Repo: store, Intent: intent}
}

// do runs the request through the full router so every gate on the route is
// exercised.
func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) token(email string) string {
	env.T.Helper()

	token, err := tokens.Sign(email, testSecret)
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) seedUser(email, role string) models.User {
	env.T.Helper()

	user := models.User{Name: "Test", Email: email, Role: role}
	require.NoError(env.T, env.Repo.DB.Create(&user).Error)
	return user
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
