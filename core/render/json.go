package render

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/gaurav-prasanna/animalpage/core"
)

// JSONRenderer writes the normalized entities rather than the page.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// jsonPage is the document written by JSONRenderer.
type jsonPage struct {
	Title   string        `json:"title,omitempty"`
	Count   int           `json:"count"`
	Animals []core.Animal `json:"animals"`
}

// Render marshals the page's animals with two-space indentation.
func (r *JSONRenderer) Render(page core.Page) ([]byte, error) {
	animals := page.Animals
	if animals == nil {
		animals = []core.Animal{}
	}

	data, err := json.MarshalIndent(jsonPage{
		Title:   page.Title,
		Count:   len(animals),
		Animals: animals,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
