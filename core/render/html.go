package render

import "github.com/gaurav-prasanna/animalpage/core"

// HTMLRenderer writes the assembled document as-is.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the assembled HTML (passthrough).
func (r *HTMLRenderer) Render(page core.Page) ([]byte, error) {
	return []byte(page.HTML), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
