package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista/internal/config"
	"github.com/plotvista/plotvista/internal/handler"
	"github.com/plotvista/plotvista/internal/router"
	"github.com/plotvista/plotvista/internal/utils"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		Env:          "test",
		JWTSecret:    testSecret,
		AccessTTLMin: 30,
		BcryptCost:   4, // min cost keeps the suite fast
		SeedUsername: "manager",
		SeedPassword: "manager123",
	}
}

// newTestServer wires the full route table the way main does, minus
// MySQL, Redis and the broker (all nil / disabled in tests).
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	authH, err := handler.NewAuthHandler(testConfig(), nil)
	require.NoError(t, err)

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, handler.NewUserHandler(), testSecret)
	router.RegisterPublic(e, handler.NewLayoutHandler(), handler.NewPlotHandler(), handler.NewBookingHandler(nil))
	router.RegisterManager(e, handler.NewPlotHandler(), handler.NewBookingHandler(nil), handler.NewUserHandler(), testSecret)
	return e
}

// bearerToken issues a signed token with the given role for tests.
func bearerToken(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, "1", role, 30)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

// doJSON performs a request with an optional JSON body and bearer header.
func doJSON(e *echo.Echo, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// doForm performs a form-encoded POST, as the login endpoint expects.
func doForm(e *echo.Echo, path, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
