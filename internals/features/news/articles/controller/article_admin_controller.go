package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kpopnews_backend/internals/configs"
	"kpopnews_backend/internals/constants"
	"kpopnews_backend/internals/features/news/articles/dto"
	"kpopnews_backend/internals/features/news/articles/model"
	helper "kpopnews_backend/internals/helpers"
	"kpopnews_backend/internals/helpers/storage"
)

var validateArticle = validator.New()

type ArticleAdminController struct {
	DB   *gorm.DB
	Blob storage.BlobService
}

func NewArticleAdminController(db *gorm.DB, blob storage.BlobService) *ArticleAdminController {
	return &ArticleAdminController{DB: db, Blob: blob}
}

// resolveThumbnail picks the article image: uploaded file first, then an
// explicit URL from the form, then nothing (caller decides the fallback).
func (ctrl *ArticleAdminController) resolveThumbnail(c *fiber.Ctx, explicitURL string) (string, error) {
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		url, upErr := ctrl.Blob.UploadImage(c.UserContext(), "thumbnails", fh)
		if upErr != nil {
			log.Printf("[ERROR] thumbnail upload: %v", upErr)
			return "", fiber.NewError(fiber.StatusBadGateway, "Failed to upload image")
		}
		return url, nil
	}
	return strings.TrimSpace(explicitURL), nil
}

// =============================
// Create Article
// =============================
func (ctrl *ArticleAdminController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	category := strings.TrimSpace(body.Category)
	if category == "" {
		category = configs.DefaultCategory
	} else if !constants.IsValidCategory(category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category")
	}

	image, err := ctrl.resolveThumbnail(c, body.ImageURL)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if image == "" {
		image = configs.DefaultImageURL
	}

	article := model.ArticleModel{
		ArticleTitle:    strings.TrimSpace(body.Title),
		ArticleContent:  body.Content,
		ArticleDate:     strings.TrimSpace(body.Date),
		ArticleImageURL: image,
		ArticleCategory: category,
		ArticleTags:     dto.SplitTags(body.Tags),
		ArticleTrending: body.Trending,
	}

	if err := ctrl.DB.Create(&article).Error; err != nil {
		log.Printf("[ERROR] create article: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create article")
	}

	return helper.JsonCreated(c, "article created", dto.ToArticleDTO(article))
}

// =============================
// Update Article
// =============================
// Only title/date/content/trending/category are mutable; the image changes
// only when a new file or URL arrives (file wins). Counters, comments,
// short id and created-at are never touched.
func (ctrl *ArticleAdminController) UpdateArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article ID format")
	}

	var body dto.UpdateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates, ferr := buildArticleUpdates(body)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch article")
	}

	// Upload only after the article is known to exist, so a 404 never
	// leaves an orphaned blob behind.
	explicitURL := ""
	if body.ImageURL != nil {
		explicitURL = *body.ImageURL
	}
	image, err := ctrl.resolveThumbnail(c, explicitURL)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if image != "" {
		updates["article_image_url"] = image
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.ArticleModel{}).
			Where("article_id = ?", id).
			Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update article %s: %v", id, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update article")
		}
		if err := ctrl.DB.First(&article, "article_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch article")
		}
	}

	return helper.JsonOK(c, "article updated", dto.ToArticleDTO(article))
}

// buildArticleUpdates maps the optional request fields onto their columns.
// Only title/date/content/trending/category are mutable here; tags, counters,
// comments, short id and created-at stay untouched.
func buildArticleUpdates(body dto.UpdateArticleRequest) (map[string]interface{}, *fiber.Error) {
	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["article_title"] = strings.TrimSpace(*body.Title)
	}
	if body.Date != nil {
		updates["article_date"] = strings.TrimSpace(*body.Date)
	}
	if body.Content != nil {
		updates["article_content"] = *body.Content
	}
	if body.Trending != nil {
		updates["article_trending"] = *body.Trending
	}
	if body.Category != nil {
		category := strings.TrimSpace(*body.Category)
		if !constants.IsValidCategory(category) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid category")
		}
		updates["article_category"] = category
	}
	return updates, nil
}

// =============================
// Delete Article (comments cascade via FK)
// =============================
func (ctrl *ArticleAdminController) DeleteArticle(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article ID format")
	}

	res := ctrl.DB.Delete(&model.ArticleModel{}, "article_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete article %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete article")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.JsonOK(c, "article deleted", fiber.Map{"article_id": id})
}

// =============================
// Inline Image Upload (for rich-text content)
// =============================
func (ctrl *ArticleAdminController) UploadInlineImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("inlineImage")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No image file provided")
	}

	url, err := ctrl.Blob.UploadImage(c.UserContext(), "inline", fh)
	if err != nil {
		log.Printf("[ERROR] inline upload: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to upload image")
	}

	return helper.JsonOK(c, "image uploaded", fiber.Map{"url": url})
}
