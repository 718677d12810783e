// Package assemble splices rendered card fragments into the page template.
package assemble

import (
	"strings"

	"github.com/gaurav-prasanna/animalpage/core"
)

// DefaultPlaceholder is the token the template marks the card list with.
const DefaultPlaceholder = "__REPLACE_ANIMALS_INFO__"

// TemplateAssembler replaces every occurrence of a placeholder token with
// the concatenated fragments.
type TemplateAssembler struct {
	placeholder  string
	allowMissing bool
}

// Option configures a TemplateAssembler.
type Option func(*TemplateAssembler)

// WithPlaceholder overrides the placeholder token. Empty keeps the default.
func WithPlaceholder(token string) Option {
	return func(a *TemplateAssembler) {
		if token != "" {
			a.placeholder = token
		}
	}
}

// WithAllowMissing makes a template without the placeholder pass through
// unchanged instead of failing.
func WithAllowMissing(allow bool) Option {
	return func(a *TemplateAssembler) {
		a.allowMissing = allow
	}
}

// New creates a TemplateAssembler.
func New(opts ...Option) *TemplateAssembler {
	a := &TemplateAssembler{placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Placeholder returns the token being replaced.
func (a *TemplateAssembler) Placeholder() string {
	return a.placeholder
}

// Assemble joins the fragments in order and substitutes them for every
// occurrence of the placeholder. A template without the placeholder is a
// core.ErrTemplate error unless missing placeholders are allowed.
func (a *TemplateAssembler) Assemble(template string, fragments []string) (string, error) {
	if !strings.Contains(template, a.placeholder) {
		if a.allowMissing {
			return template, nil
		}
		return "", core.TemplateErrorf("placeholder %q not found in template", a.placeholder)
	}

	return strings.ReplaceAll(template, a.placeholder, strings.Join(fragments, "")), nil
}
