package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kpopnews_backend/internals/constants"
	"kpopnews_backend/internals/features/news/articles/dto"
	"kpopnews_backend/internals/features/news/articles/model"
	helper "kpopnews_backend/internals/helpers"
)

const trendingLimit = 5

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db}
}

// applyArticleFilters narrows a query by ?search, ?category and ?tag.
// Search is a case-insensitive substring match over title OR content.
func applyArticleFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		needle := "%" + search + "%"
		q = q.Where("article_title ILIKE ? OR article_content ILIKE ?", needle, needle)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("article_category = ?", category)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(article_tags)", tag)
	}
	return q
}

// =============================
// Get All Articles (filtered, newest first, paginated)
// =============================
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	// Fresh chains for count and select; sharing one statement between
	// Count and Find corrupts the generated SQL.
	filtered := func() *gorm.DB {
		return applyArticleFilters(ctrl.DB.Model(&model.ArticleModel{}), c)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch articles")
	}

	var articles []model.ArticleModel
	if err := filtered().
		Order("article_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch articles")
	}

	return helper.JsonList(c, "articles", dto.ToArticleDTOs(articles),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// =============================
// Count Articles (same filters as the listing)
// =============================
func (ctrl *ArticleController) CountArticles(c *fiber.Ctx) error {
	var total int64
	if err := applyArticleFilters(ctrl.DB.Model(&model.ArticleModel{}), c).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count articles")
	}
	return helper.JsonOK(c, "article count", fiber.Map{"count": total})
}

// =============================
// Get Article By ID (increments views atomically with the read)
// =============================
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article ID format")
	}

	var article model.ArticleModel
	res := ctrl.DB.Raw(`
		UPDATE articles
		SET article_views = article_views + 1
		WHERE article_id = ?
		RETURNING *`, id).Scan(&article)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch article")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.JsonOK(c, "article", dto.ToArticleDTO(article))
}

// =============================
// Get Trending (top 5, newest first)
// =============================
func (ctrl *ArticleController) GetTrending(c *fiber.Ctx) error {
	var articles []model.ArticleModel
	if err := ctrl.DB.
		Where("article_trending = TRUE").
		Order("article_created_at DESC").
		Limit(trendingLimit).
		Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch trending articles")
	}
	return helper.JsonOK(c, "trending articles", dto.ToArticleDTOs(articles))
}

// =============================
// Homepage Previews (latest article per category, enumeration order)
// =============================
func (ctrl *ArticleController) GetCategoryPreviews(c *fiber.Ctx) error {
	previews := make([]dto.CategoryPreviewDTO, 0, len(constants.Categories))
	for _, category := range constants.Categories {
		var rows []model.ArticleModel
		if err := ctrl.DB.
			Where("article_category = ?", category).
			Order("article_created_at DESC").
			Limit(1).
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch category previews")
		}
		if len(rows) == 0 {
			continue
		}
		previews = append(previews, dto.CategoryPreviewDTO{
			Category: category,
			Article:  dto.ToArticleDTO(rows[0]),
		})
	}
	return helper.JsonOK(c, "homepage previews", previews)
}
