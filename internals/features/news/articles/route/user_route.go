package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kpopnews_backend/internals/features/news/articles/controller"
)

func AllArticleRoutes(api fiber.Router, db *gorm.DB) {
	articleCtrl := controller.NewArticleController(db)
	likeCtrl := controller.NewLikeController(db)
	commentCtrl := controller.NewCommentController(db)

	// === PUBLIC ROUTES ===
	api.Get("/articles", articleCtrl.GetAllArticles)
	api.Get("/articles/count", articleCtrl.CountArticles)
	api.Get("/trending", articleCtrl.GetTrending)
	api.Get("/categories/homepage-previews", articleCtrl.GetCategoryPreviews)
	api.Get("/articles/:id", articleCtrl.GetArticleByID)

	api.Post("/articles/:id/like", likeCtrl.LikeArticle)
	api.Get("/articles/:id/comments", commentCtrl.ListComments)
	api.Post("/articles/:id/comments", commentCtrl.AddComment)
}
