package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpopnews_backend/internals/configs"
	articleRoutes "kpopnews_backend/internals/features/news/articles/route"
	previewRoutes "kpopnews_backend/internals/features/news/preview/route"
	authRoutes "kpopnews_backend/internals/features/users/auth/route"
	"kpopnews_backend/internals/helpers/storage"
	authmw "kpopnews_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, blob storage.BlobService) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// === PUBLIC API ===
	authRoutes.AuthRoutes(api)
	articleRoutes.AllArticleRoutes(api, db)

	// === ADMIN API (shared-secret header) ===
	authenticator := authmw.NewAuthenticator(configs.AdminSessionToken)
	articleRoutes.ArticleAdminRoutes(api, db, blob, authmw.AdminOnly(authenticator))

	// === SERVER-RENDERED PREVIEW PAGES ===
	previewRoutes.PreviewRoutes(app, db)
}
