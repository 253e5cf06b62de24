package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"kpopnews_backend/internals/configs"
	database "kpopnews_backend/internals/databases"
	"kpopnews_backend/internals/helpers/storage"
	middlewares "kpopnews_backend/internals/middlewares"
	routes "kpopnews_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		BodyLimit:               5 * 1024 * 1024,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing, plus a timeout guard aligned with the DB
	// statement_timeout.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	blob, err := storage.NewBlobServiceFromEnv()
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	routes.SetupRoutes(app, database.DB, blob)
	mountStatic(app, blob)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		log.Printf("listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// mountStatic attaches the file servers. Fiber matches handlers in
// registration order, so this runs after SetupRoutes: the public directory
// ships its own article.html, and mounting it earlier would shadow the
// /article.html route with the raw file.
func mountStatic(app *fiber.App, blob storage.BlobService) {
	// Uploaded images are served by the app itself when the local driver is
	// active; the OSS driver returns absolute bucket URLs instead.
	if local, ok := blob.(*storage.LocalStorage); ok {
		app.Static(local.BaseURL, local.Root)
	}
	if publicDir := configs.GetEnv("PUBLIC_DIR"); publicDir != "" {
		app.Static("/", publicDir)
	}
}
