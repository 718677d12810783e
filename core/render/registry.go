package render

import (
	"fmt"

	"github.com/gaurav-prasanna/animalpage/core"
)

// Output formats understood by ForFormat.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatHTML, FormatMarkdown, FormatPDF, FormatJSON}

// ForFormat creates the Renderer for an output format name.
func ForFormat(format string, extended bool) (core.Renderer, error) {
	switch format {
	case FormatHTML, "":
		return NewHTMLRenderer(), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(extended), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
