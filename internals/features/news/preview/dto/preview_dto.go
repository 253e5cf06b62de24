package dto

// PreviewData holds the five values substituted into the social-preview
// template.
type PreviewData struct {
	Title        string
	Description  string
	Image        string
	CanonicalURL string
	Card         string
}
