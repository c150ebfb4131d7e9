package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Ananth-NQI/scam-honeypot/internal/config"
)

func newProtectedApp(auth config.Auth, reached *bool) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAPIKey(auth), func(c *fiber.Ctx) error {
		*reached = true
		return c.SendString("ok")
	})
	return app
}

func TestRequireAPIKey_Raw(t *testing.T) {
	auth := config.Auth{APIKey: "secret", Header: "x-api-key", Scheme: config.SchemeRaw}

	cases := []struct {
		name   string
		header string
		value  string
		status int
	}{
		{name: "valid", header: "x-api-key", value: "secret", status: http.StatusOK},
		{name: "header case-insensitive", header: "X-API-KEY", value: "secret", status: http.StatusOK},
		{name: "wrong key", header: "x-api-key", value: "nope", status: http.StatusUnauthorized},
		{name: "value case matters", header: "x-api-key", value: "SECRET", status: http.StatusUnauthorized},
		{name: "missing", status: http.StatusUnauthorized},
		{name: "bearer not accepted", header: "Authorization", value: "Bearer secret", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached := false
			app := newProtectedApp(auth, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
			require.Equal(t, tc.status == http.StatusOK, reached)
		})
	}
}

func TestRequireAPIKey_Bearer(t *testing.T) {
	auth := config.Auth{APIKey: "secret", Header: "Authorization", Scheme: config.SchemeBearer}

	cases := []struct {
		name   string
		value  string
		status int
	}{
		{name: "valid", value: "Bearer secret", status: http.StatusOK},
		{name: "lower-case scheme", value: "bearer secret", status: http.StatusOK},
		{name: "raw token", value: "secret", status: http.StatusUnauthorized},
		{name: "empty token", value: "Bearer ", status: http.StatusUnauthorized},
		{name: "wrong token", value: "Bearer other", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached := false
			app := newProtectedApp(auth, &reached)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tc.value)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
			require.Equal(t, tc.status == http.StatusOK, reached)
		})
	}
}
