package dto

import (
	"strings"
	"time"

	"kpopnews_backend/internals/features/news/articles/model"
)

// ============================
// Response DTO
// ============================

type ArticleDTO struct {
	ArticleID       string    `json:"article_id"`
	ArticleShortID  string    `json:"article_short_id"`
	ArticleTitle    string    `json:"article_title"`
	ArticleContent  string    `json:"article_content"`
	ArticleDate     string    `json:"article_date"`
	ArticleImageURL string    `json:"article_image_url"`
	ArticleCategory string    `json:"article_category"`
	ArticleTags     []string  `json:"article_tags"`
	ArticleTrending bool      `json:"article_trending"`
	ArticleLikes    int       `json:"article_likes"`
	ArticleViews    int       `json:"article_views"`
	ArticleCreated  time.Time `json:"article_created_at"`
}

type CategoryPreviewDTO struct {
	Category string     `json:"category"`
	Article  ArticleDTO `json:"article"`
}

// ============================
// Create & Update Request DTO
// ============================

// CreateArticleRequest is bound from the multipart admin form. The thumbnail
// file rides alongside as form field "thumbnail" and is handled separately.
type CreateArticleRequest struct {
	Title    string `form:"title" json:"title" validate:"required,min=3"`
	Date     string `form:"date" json:"date"`
	Content  string `form:"content" json:"content"`
	Trending bool   `form:"trending" json:"trending"`
	Category string `form:"category" json:"category"`
	Tags     string `form:"tags" json:"tags"` // comma separated
	ImageURL string `form:"imageUrl" json:"imageUrl"`
}

// UpdateArticleRequest applies only the fields present; pointers distinguish
// "absent" from "set to zero value". Tags are fixed at creation and have no
// update field.
type UpdateArticleRequest struct {
	Title    *string `form:"title" json:"title" validate:"omitempty,min=3"`
	Date     *string `form:"date" json:"date"`
	Content  *string `form:"content" json:"content"`
	Trending *bool   `form:"trending" json:"trending"`
	Category *string `form:"category" json:"category"`
	ImageURL *string `form:"imageUrl" json:"imageUrl"`
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	tags := []string(m.ArticleTags)
	if tags == nil {
		tags = []string{}
	}
	return ArticleDTO{
		ArticleID:       m.ArticleID,
		ArticleShortID:  m.ArticleShortID,
		ArticleTitle:    m.ArticleTitle,
		ArticleContent:  m.ArticleContent,
		ArticleDate:     m.ArticleDate,
		ArticleImageURL: m.ArticleImageURL,
		ArticleCategory: m.ArticleCategory,
		ArticleTags:     tags,
		ArticleTrending: m.ArticleTrending,
		ArticleLikes:    m.ArticleLikes,
		ArticleViews:    m.ArticleViews,
		ArticleCreated:  m.ArticleCreatedAt,
	}
}

func ToArticleDTOs(models []model.ArticleModel) []ArticleDTO {
	out := make([]ArticleDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToArticleDTO(m))
	}
	return out
}

// SplitTags turns the comma-separated form value into a trimmed tag set.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
