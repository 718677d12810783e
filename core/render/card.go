// Package render provides the card fragment renderer and the output
// renderers for the animalpage pipeline.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/animalpage/core"
)

// CardRenderer renders one animal as an HTML list item. Values are
// inserted verbatim unless sanitizing is enabled.
type CardRenderer struct {
	extended bool
	sanitize bool
}

// CardOption configures a CardRenderer.
type CardOption func(*CardRenderer)

// WithExtended adds taxonomy and characteristics lines after the type line.
func WithExtended(extended bool) CardOption {
	return func(r *CardRenderer) {
		r.extended = extended
	}
}

// WithSanitize strips markup from field values and escapes entities.
func WithSanitize(sanitize bool) CardOption {
	return func(r *CardRenderer) {
		r.sanitize = sanitize
	}
}

// NewCardRenderer creates a CardRenderer.
func NewCardRenderer(opts ...CardOption) *CardRenderer {
	r := &CardRenderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderFragment renders a card. The layout is fixed: title, diet,
// locations, type, extended lines, closing tags. A block is emitted only
// when its field is present; an empty string or empty locations list is
// present and renders blank.
func (r *CardRenderer) RenderFragment(a core.Animal) string {
	var b strings.Builder

	b.WriteString(`<li class="cards__item">`)
	if a.Name != nil {
		b.WriteString(`<div class="card__title">`)
		b.WriteString(r.value(*a.Name))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<p class="card__text">`)
	for _, l := range cardLines(a, r.extended) {
		b.WriteString(`<strong>`)
		b.WriteString(l.label)
		b.WriteString(`:</strong> `)
		b.WriteString(r.value(l.value))
		b.WriteString(`<br/>`)
	}
	b.WriteString(`</p></li>`)
	return b.String()
}

func (r *CardRenderer) value(v string) string {
	if !r.sanitize {
		return v
	}
	return sanitizeValue(v)
}

// RenderAll renders every animal in order.
func RenderAll(r core.FragmentRenderer, animals []core.Animal) []string {
	fragments := make([]string, len(animals))
	for i, a := range animals {
		fragments[i] = r.RenderFragment(a)
	}
	return fragments
}

type textLine struct {
	label string
	value string
}

// cardLines lists the labelled lines of a card in render order, using the
// same presence rules as CardRenderer.
func cardLines(a core.Animal, extended bool) []textLine {
	var lines []textLine
	if a.Diet != nil {
		lines = append(lines, textLine{"Diet", *a.Diet})
	}
	if a.HasLocations() {
		lines = append(lines, textLine{"Location(s)", strings.Join(a.Locations, ", ")})
	}
	if a.Type != nil {
		lines = append(lines, textLine{"Type", *a.Type})
	}
	if !extended {
		return lines
	}

	for _, attr := range a.Taxonomy.Attributes() {
		if attr.Value != nil {
			lines = append(lines, textLine{attr.Label, *attr.Value})
		}
	}
	for _, attr := range a.Characteristics.Attributes() {
		// Already shown as the diet and type lines.
		if attr.Key == "diet" || attr.Key == "type" || attr.Value == nil {
			continue
		}
		lines = append(lines, textLine{attr.Label, *attr.Value})
	}
	return lines
}
