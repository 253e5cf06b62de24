package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "kpopnews_backend/internals/helpers"
)

type LikeController struct {
	DB *gorm.DB
}

func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{DB: db}
}

// =============================
// Like Article (atomic increment, returns the resulting count)
// =============================
func (ctrl *LikeController) LikeArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article ID format")
	}

	var row struct {
		ArticleLikes int `gorm:"column:article_likes"`
	}
	res := ctrl.DB.Raw(`
		UPDATE articles
		SET article_likes = article_likes + 1
		WHERE article_id = ?
		RETURNING article_likes`, id).Scan(&row)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to like article")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.JsonOK(c, "article liked", fiber.Map{"likes": row.ArticleLikes})
}
