package service

import (
	"bytes"
	"embed"
	"html/template"

	"kpopnews_backend/internals/features/news/preview/dto"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer produces the preview HTML for crawlers and browsers.
type Renderer interface {
	RenderPreview(data dto.PreviewData) ([]byte, error)
	NotFoundPage() []byte
	ErrorPage() []byte
}

type HTMLRenderer struct {
	tmpl     *template.Template
	notFound []byte
	errPage  []byte
}

func NewHTMLRenderer() *HTMLRenderer {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/article_preview.html"))
	notFound, err := templateFS.ReadFile("templates/not_found.html")
	if err != nil {
		panic("preview: not_found.html missing: " + err.Error())
	}
	errPage, err := templateFS.ReadFile("templates/error.html")
	if err != nil {
		panic("preview: error.html missing: " + err.Error())
	}
	return &HTMLRenderer{tmpl: tmpl, notFound: notFound, errPage: errPage}
}

func (r *HTMLRenderer) RenderPreview(data dto.PreviewData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) NotFoundPage() []byte { return r.notFound }
func (r *HTMLRenderer) ErrorPage() []byte    { return r.errPage }
