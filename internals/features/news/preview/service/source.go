package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kpopnews_backend/internals/features/news/articles/model"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleSource resolves the article behind a preview request. Both lookups
// count as a read of the article, so views are incremented exactly as on the
// JSON detail endpoint.
type ArticleSource interface {
	ByID(ctx context.Context, id string) (*model.ArticleModel, error)
	ByShortID(ctx context.Context, shortID string) (*model.ArticleModel, error)
}

type GormArticleSource struct {
	DB *gorm.DB
}

func NewGormArticleSource(db *gorm.DB) *GormArticleSource {
	return &GormArticleSource{DB: db}
}

func (s *GormArticleSource) fetch(ctx context.Context, column, value string) (*model.ArticleModel, error) {
	var article model.ArticleModel
	res := s.DB.WithContext(ctx).Raw(`
		UPDATE articles
		SET article_views = article_views + 1
		WHERE `+column+` = ?
		RETURNING *`, value).Scan(&article)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrArticleNotFound
	}
	return &article, nil
}

func (s *GormArticleSource) ByID(ctx context.Context, id string) (*model.ArticleModel, error) {
	return s.fetch(ctx, "article_id", id)
}

func (s *GormArticleSource) ByShortID(ctx context.Context, shortID string) (*model.ArticleModel, error) {
	return s.fetch(ctx, "article_short_id", shortID)
}
