package route

import (
	"github.com/gofiber/fiber/v2"

	"kpopnews_backend/internals/features/users/auth/controller"
	"kpopnews_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router) {
	authCtrl := controller.NewAuthController()

	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
}
