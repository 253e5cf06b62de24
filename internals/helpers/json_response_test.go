package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvePagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/t", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolvePagingFor(t, "/t", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 20, p.Limit)
}

func TestResolvePagingPageAndPerPage(t *testing.T) {
	p := resolvePagingFor(t, "/t?page=3&per_page=10", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolvePagingFor(t, "/t?limit=5", 20, 100)
	assert.Equal(t, 5, p.PerPage)
}

func TestResolvePagingExplicitOffsetWins(t *testing.T) {
	p := resolvePagingFor(t, "/t?limit=10&offset=25", 20, 100)
	assert.Equal(t, 25, p.Offset)
	assert.Equal(t, 3, p.Page)
}

func TestResolvePagingClampsToMax(t *testing.T) {
	p := resolvePagingFor(t, "/t?per_page=500", 20, 100)
	assert.Equal(t, 100, p.PerPage)
}

func TestResolvePagingIgnoresGarbage(t *testing.T) {
	p := resolvePagingFor(t, "/t?page=-2&per_page=abc", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(45, 20, 10)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationEmptyResult(t *testing.T) {
	p := BuildPaginationFromOffset(0, 0, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
