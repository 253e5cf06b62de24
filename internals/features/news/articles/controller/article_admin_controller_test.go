package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpopnews_backend/internals/features/news/articles/dto"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildArticleUpdatesOnlyMutableColumns(t *testing.T) {
	updates, ferr := buildArticleUpdates(dto.UpdateArticleRequest{
		Title:    strPtr("  New Title  "),
		Date:     strPtr("August 29, 2026"),
		Content:  strPtr("<p>body</p>"),
		Trending: boolPtr(true),
		Category: strPtr("comeback"),
	})
	require.Nil(t, ferr)

	assert.Equal(t, map[string]interface{}{
		"article_title":    "New Title",
		"article_date":     "August 29, 2026",
		"article_content":  "<p>body</p>",
		"article_trending": true,
		"article_category": "comeback",
	}, updates)
	assert.NotContains(t, updates, "article_tags")
	assert.NotContains(t, updates, "article_likes")
	assert.NotContains(t, updates, "article_views")
	assert.NotContains(t, updates, "article_short_id")
}

func TestBuildArticleUpdatesEmptyBody(t *testing.T) {
	updates, ferr := buildArticleUpdates(dto.UpdateArticleRequest{})
	require.Nil(t, ferr)
	assert.Empty(t, updates)
}

func TestBuildArticleUpdatesInvalidCategory(t *testing.T) {
	_, ferr := buildArticleUpdates(dto.UpdateArticleRequest{Category: strPtr("gossip")})
	require.NotNil(t, ferr)
	assert.Equal(t, fiber.StatusBadRequest, ferr.Code)
}
