package model

import (
	"time"

	"github.com/lib/pq"
)

type ArticleModel struct {
	ArticleID string `gorm:"column:article_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"article_id"`

	// Assigned by the articles_short_id_seq default; zero-padded so compact
	// links look like /a/0007. Never written by the application.
	ArticleShortID string `gorm:"column:article_short_id;type:varchar(16);uniqueIndex;default:lpad(nextval('articles_short_id_seq')::text, 4, '0')" json:"article_short_id"`

	ArticleTitle    string         `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleContent  string         `gorm:"column:article_content;type:text;not null" json:"article_content"`
	ArticleDate     string         `gorm:"column:article_date;type:varchar(64)" json:"article_date"`
	ArticleImageURL string         `gorm:"column:article_image_url;type:text" json:"article_image_url"`
	ArticleCategory string         `gorm:"column:article_category;type:varchar(32);not null" json:"article_category"`
	ArticleTags     pq.StringArray `gorm:"column:article_tags;type:text[]" json:"article_tags"`
	ArticleTrending bool           `gorm:"column:article_trending;default:false" json:"article_trending"`
	ArticleLikes    int            `gorm:"column:article_likes;default:0" json:"article_likes"`
	ArticleViews    int            `gorm:"column:article_views;default:0" json:"article_views"`

	ArticleCreatedAt time.Time `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt time.Time `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}
