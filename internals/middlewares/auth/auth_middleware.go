// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "kpopnews_backend/internals/helpers"
)

// SessionHeader carries the admin shared-secret token.
const SessionHeader = "X-Session-Id"

// Authenticator validates the single static admin token. There is no
// per-user session store; one configured token guards every admin route.
type Authenticator struct {
	token string
}

func NewAuthenticator(token string) *Authenticator {
	return &Authenticator{token: strings.TrimSpace(token)}
}

func (a *Authenticator) Validate(token string) bool {
	if a.token == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.token), []byte(token)) == 1
}

// AdminOnly rejects any request whose session header does not match the
// configured token.
func AdminOnly(auth *Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Validate(c.Get(SessionHeader)) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: invalid session ID")
		}
		return c.Next()
	}
}
