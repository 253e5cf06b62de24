package controller

import (
	"crypto/subtle"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"kpopnews_backend/internals/configs"
	helper "kpopnews_backend/internals/helpers"
)

var validateLogin = validator.New()

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// =============================
// Login (static admin credential -> shared-secret session token)
// =============================
// There is exactly one credential pair. The password is checked against a
// bcrypt hash (generate one with cmd/tools/hashpass); a successful login
// returns the configured token the admin frontend sends on every protected
// request.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLogin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if configs.AdminPasswordHash == "" || configs.AdminSessionToken == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login is not configured")
	}

	usernameOK := subtle.ConstantTimeCompare(
		[]byte(configs.AdminUsername), []byte(body.Username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(
		[]byte(configs.AdminPasswordHash), []byte(body.Password)) == nil

	if !usernameOK || !passwordOK {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"sessionId": configs.AdminSessionToken,
	})
}
