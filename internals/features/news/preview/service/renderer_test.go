package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpopnews_backend/internals/features/news/preview/dto"
)

func TestRenderPreviewSubstitutesAllFields(t *testing.T) {
	r := NewHTMLRenderer()

	page, err := r.RenderPreview(dto.PreviewData{
		Title:        "NewJeans comeback",
		Description:  "The group returns in June.",
		Image:        "https://cdn.example.com/nj.jpg",
		CanonicalURL: "https://news.example.com/a/0012",
		Card:         "summary_large_image",
	})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "<title>NewJeans comeback</title>")
	assert.Contains(t, html, `content="The group returns in June."`)
	assert.Contains(t, html, `content="https://cdn.example.com/nj.jpg"`)
	assert.Contains(t, html, `content="https://news.example.com/a/0012"`)
	assert.Contains(t, html, `content="summary_large_image"`)
}

func TestRenderPreviewEscapesMarkup(t *testing.T) {
	r := NewHTMLRenderer()

	page, err := r.RenderPreview(dto.PreviewData{
		Title: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>alert")
}

func TestStaticPagesPresent(t *testing.T) {
	r := NewHTMLRenderer()

	assert.Contains(t, string(r.NotFoundPage()), "Article not found")
	assert.Contains(t, string(r.ErrorPage()), "Something went wrong")
}
