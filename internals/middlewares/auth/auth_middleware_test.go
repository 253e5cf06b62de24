package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatorValidate(t *testing.T) {
	a := NewAuthenticator("secret-token")

	assert.True(t, a.Validate("secret-token"))
	assert.False(t, a.Validate("wrong"))
	assert.False(t, a.Validate(""))

	// An unconfigured token must never match, not even the empty string.
	empty := NewAuthenticator("")
	assert.False(t, empty.Validate(""))
	assert.False(t, empty.Validate("anything"))
}

func TestAdminOnlyMiddleware(t *testing.T) {
	app := fiber.New()
	app.Post("/protected", AdminOnly(NewAuthenticator("secret-token")), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		name   string
		token  string
		status int
	}{
		{"valid token", "secret-token", fiber.StatusOK},
		{"wrong token", "nope", fiber.StatusUnauthorized},
		{"missing token", "", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/protected", nil)
			if tc.token != "" {
				req.Header.Set(SessionHeader, tc.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
