package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kpopnews_backend/internals/configs"
	"kpopnews_backend/internals/features/news/articles/model"
	"kpopnews_backend/internals/features/news/preview/dto"
	"kpopnews_backend/internals/features/news/preview/service"
	helper "kpopnews_backend/internals/helpers"
)

const twitterCardType = "summary_large_image"

// PreviewController serves the server-rendered article pages consumed by
// social-platform crawlers. Three addressing schemes resolve to the same
// article: /article/:id, /a/:shortId and the legacy /article.html?id= form.
type PreviewController struct {
	Source   service.ArticleSource
	Renderer service.Renderer
}

func NewPreviewController(source service.ArticleSource, renderer service.Renderer) *PreviewController {
	return &PreviewController{Source: source, Renderer: renderer}
}

// =============================
// /article/:id (long identifier)
// =============================
func (ctrl *PreviewController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.sendNotFound(c, fiber.StatusBadRequest)
	}

	article, err := ctrl.Source.ByID(c.UserContext(), id)
	if err != nil {
		return ctrl.sendLookupFailure(c, err)
	}
	return ctrl.render(c, article)
}

// =============================
// /a/:shortId (compact path)
// =============================
func (ctrl *PreviewController) GetByShortID(c *fiber.Ctx) error {
	shortID := strings.TrimSpace(c.Params("shortId"))
	if shortID == "" {
		return ctrl.sendNotFound(c, fiber.StatusBadRequest)
	}

	article, err := ctrl.Source.ByShortID(c.UserContext(), shortID)
	if err != nil {
		return ctrl.sendLookupFailure(c, err)
	}
	return ctrl.render(c, article)
}

// =============================
// /article.html?id= (legacy query form)
// =============================
// Articles carrying a short id redirect permanently to the canonical compact
// path so crawlers stop splitting shares across duplicate URLs.
func (ctrl *PreviewController) GetLegacy(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		return ctrl.sendNotFound(c, fiber.StatusBadRequest)
	}
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.sendNotFound(c, fiber.StatusBadRequest)
	}

	article, err := ctrl.Source.ByID(c.UserContext(), id)
	if err != nil {
		return ctrl.sendLookupFailure(c, err)
	}
	if article.ArticleShortID != "" {
		return c.Redirect("/a/"+article.ArticleShortID, fiber.StatusMovedPermanently)
	}
	return ctrl.render(c, article)
}

// =============================
// rendering helpers
// =============================

func (ctrl *PreviewController) render(c *fiber.Ctx, article *model.ArticleModel) error {
	data := BuildPreviewData(article, c.Protocol(), c.Hostname())
	page, err := ctrl.Renderer.RenderPreview(data)
	if err != nil {
		log.Printf("[ERROR] render preview: %v", err)
		return ctrl.sendError(c)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(page)
}

func (ctrl *PreviewController) sendLookupFailure(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrArticleNotFound) {
		return ctrl.sendNotFound(c, fiber.StatusNotFound)
	}
	log.Printf("[ERROR] preview lookup: %v", err)
	return ctrl.sendError(c)
}

func (ctrl *PreviewController) sendNotFound(c *fiber.Ctx, status int) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(ctrl.Renderer.NotFoundPage())
}

func (ctrl *PreviewController) sendError(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusInternalServerError).Send(ctrl.Renderer.ErrorPage())
}

// BuildPreviewData derives the five template values from an article and the
// request's scheme/host.
func BuildPreviewData(article *model.ArticleModel, scheme, host string) dto.PreviewData {
	base := scheme + "://" + host

	title := strings.TrimSpace(article.ArticleTitle)
	if title == "" {
		title = configs.SiteTitle
	}

	description := helper.Excerpt(article.ArticleContent)
	if description == "" {
		description = configs.SiteDescription
	}

	image := strings.TrimSpace(article.ArticleImageURL)
	if image == "" {
		image = configs.DefaultImageURL
	}
	image = absoluteURL(base, image)

	canonical := base + "/article/" + article.ArticleID
	if article.ArticleShortID != "" {
		canonical = base + "/a/" + article.ArticleShortID
	}

	return dto.PreviewData{
		Title:        title,
		Description:  description,
		Image:        image,
		CanonicalURL: canonical,
		Card:         twitterCardType,
	}
}

func absoluteURL(base, url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return base + url
}
