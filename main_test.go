package main

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The public frontend directory contains its own article.html; the legacy
// route must still be the one answering /article.html?id=, so the static
// mount has to come after route registration.
func TestLegacyRouteNotShadowedByPublicDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "article.html"), []byte("static file"), 0o644))
	t.Setenv("PUBLIC_DIR", dir)

	app := fiber.New()
	app.Get("/article.html", func(c *fiber.Ctx) error {
		return c.SendString("legacy handler")
	})
	mountStatic(app, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/article.html?id=abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "legacy handler", string(body))
}

func TestPublicDirStillServesOtherAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o644))
	t.Setenv("PUBLIC_DIR", dir)

	app := fiber.New()
	app.Get("/article.html", func(c *fiber.Ctx) error {
		return c.SendString("legacy handler")
	})
	mountStatic(app, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/app.css", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{}", string(body))
}
