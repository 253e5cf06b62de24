package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kpopnews_backend/internals/features/news/articles/dto"
	"kpopnews_backend/internals/features/news/articles/model"
	helper "kpopnews_backend/internals/helpers"
)

const (
	maxCommentAuthorLen = 50
	anonymousAuthor     = "anonymous"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// normalizeComment applies the comment defaulting rules: text must be
// non-empty after trimming, the author is capped at 50 characters and blank
// authors become "anonymous".
func normalizeComment(author, text string) (string, string, *fiber.Error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Comment text must not be empty")
	}

	author = strings.TrimSpace(author)
	if len([]rune(author)) > maxCommentAuthorLen {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Author name must be 50 characters or less")
	}
	if author == "" {
		author = anonymousAuthor
	}
	return author, text, nil
}

func (ctrl *CommentController) articleExists(id string) (bool, error) {
	var count int64
	err := ctrl.DB.Model(&model.ArticleModel{}).
		Where("article_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// =============================
// List Comments (oldest first)
// =============================
func (ctrl *CommentController) ListComments(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article ID format")
	}

	exists, err := ctrl.articleExists(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	var comments []model.CommentModel
	if err := ctrl.DB.
		Where("comment_article_id = ?", id).
		Order("comment_created_at ASC").
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}

	return helper.JsonOK(c, "comments", dto.ToCommentDTOs(comments))
}

// =============================
// Add Comment
// =============================
func (ctrl *CommentController) AddComment(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article ID format")
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	author, text, verr := normalizeComment(body.Author, body.Text)
	if verr != nil {
		return helper.JsonError(c, verr.Code, verr.Message)
	}

	exists, err := ctrl.articleExists(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add comment")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	comment := model.CommentModel{
		CommentArticleID: id,
		CommentAuthor:    author,
		CommentText:      text,
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		// The article may have been deleted between the existence check and
		// the insert; the FK violation maps back to not-found.
		if isForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add comment")
	}

	return helper.JsonCreated(c, "comment added", dto.ToCommentDTO(comment))
}

// isForeignKeyViolation reports whether err carries the Postgres
// foreign_key_violation code (23503), as raised by the pgx driver.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
