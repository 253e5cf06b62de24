package database

import (
	"fmt"
	"log"
)

// schemaDDL is idempotent; every statement is safe to re-run at startup.
// article_short_id is assigned by a dedicated sequence so that concurrent
// inserts can never observe the same value.
var schemaDDL = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE SEQUENCE IF NOT EXISTS articles_short_id_seq`,

	`CREATE TABLE IF NOT EXISTS articles (
		article_id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		article_short_id   VARCHAR(16) NOT NULL UNIQUE
			DEFAULT lpad(nextval('articles_short_id_seq')::text, 4, '0'),
		article_title      VARCHAR(255) NOT NULL,
		article_content    TEXT NOT NULL DEFAULT '',
		article_date       VARCHAR(64) NOT NULL DEFAULT '',
		article_image_url  TEXT NOT NULL DEFAULT '',
		article_category   VARCHAR(32) NOT NULL DEFAULT 'news',
		article_tags       TEXT[] NOT NULL DEFAULT '{}',
		article_trending   BOOLEAN NOT NULL DEFAULT FALSE,
		article_likes      INTEGER NOT NULL DEFAULT 0,
		article_views      INTEGER NOT NULL DEFAULT 0,
		article_created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		article_updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS article_comments (
		comment_id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		comment_article_id UUID NOT NULL
			REFERENCES articles(article_id) ON DELETE CASCADE,
		comment_author     VARCHAR(50) NOT NULL DEFAULT 'anonymous',
		comment_text       TEXT NOT NULL,
		comment_created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_articles_created_at
		ON articles (article_created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category
		ON articles (article_category)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_trending
		ON articles (article_trending) WHERE article_trending`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article
		ON article_comments (comment_article_id, comment_created_at)`,
}

func Migrate() error {
	for _, stmt := range schemaDDL {
		if err := DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	log.Println("schema up to date.")
	return nil
}
