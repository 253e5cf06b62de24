package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpopnews_backend/internals/features/news/articles/controller"
	"kpopnews_backend/internals/helpers/storage"
)

// ArticleAdminRoutes registers the protected routes. The guard is attached
// per route because admin and public verbs share the /api/articles prefix.
func ArticleAdminRoutes(api fiber.Router, db *gorm.DB, blob storage.BlobService, adminOnly fiber.Handler) {
	adminCtrl := controller.NewArticleAdminController(db, blob)

	api.Post("/news", adminOnly, adminCtrl.CreateArticle)
	api.Put("/articles/:id", adminOnly, adminCtrl.UpdateArticle)
	api.Delete("/articles/:id", adminOnly, adminCtrl.DeleteArticle)
	api.Post("/upload-inline-image", adminOnly, adminCtrl.UploadInlineImage)
}
