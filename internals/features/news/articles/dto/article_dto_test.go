package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kpopnews_backend/internals/features/news/articles/model"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"iu", "tour"}, SplitTags("iu, tour"))
	assert.Equal(t, []string{"iu"}, SplitTags("iu,,iu , "))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , ,"))
}

func TestToArticleDTONilTags(t *testing.T) {
	out := ToArticleDTO(model.ArticleModel{ArticleID: "x"})
	// JSON consumers always see an array, never null.
	assert.NotNil(t, out.ArticleTags)
	assert.Empty(t, out.ArticleTags)
}

func TestToArticleDTOCopiesFields(t *testing.T) {
	m := model.ArticleModel{
		ArticleID:       "id-1",
		ArticleShortID:  "0003",
		ArticleTitle:    "t",
		ArticleCategory: "comeback",
		ArticleTags:     []string{"iu"},
		ArticleLikes:    7,
		ArticleViews:    11,
		ArticleTrending: true,
	}
	out := ToArticleDTO(m)
	assert.Equal(t, "0003", out.ArticleShortID)
	assert.Equal(t, "comeback", out.ArticleCategory)
	assert.Equal(t, []string{"iu"}, out.ArticleTags)
	assert.Equal(t, 7, out.ArticleLikes)
	assert.Equal(t, 11, out.ArticleViews)
	assert.True(t, out.ArticleTrending)
}
