package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpopnews_backend/internals/features/news/preview/controller"
	"kpopnews_backend/internals/features/news/preview/service"
)

func PreviewRoutes(app fiber.Router, db *gorm.DB) {
	previewCtrl := controller.NewPreviewController(
		service.NewGormArticleSource(db),
		service.NewHTMLRenderer(),
	)

	app.Get("/article/:id", previewCtrl.GetByID)
	app.Get("/a/:shortId", previewCtrl.GetByShortID)
	app.Get("/article.html", previewCtrl.GetLegacy)
}
