// Package core defines the pipeline interfaces for animalpage.
// Each stage of the pipeline is a clean, testable interface.
package core

import "io"

// RawRecord is one element of the input JSON array before normalization.
// Value holds whatever the decoder produced; no shape is guaranteed.
type RawRecord struct {
	Index int
	Value any
}

// Page is everything an output renderer may need: the assembled document
// plus the entities it was built from.
type Page struct {
	Title   string
	HTML    string
	Animals []Animal
}

// Loader parses a JSON document into raw records.
type Loader interface {
	Load(r io.Reader) ([]RawRecord, error)
}

// Normalizer maps raw records to entities. Records that cannot be mapped are
// reported in the error slice and left out of the result.
type Normalizer interface {
	Normalize(records []RawRecord) ([]Animal, []error)
}

// FragmentRenderer turns one entity into one HTML card.
type FragmentRenderer interface {
	RenderFragment(a Animal) string
}

// Assembler splices rendered fragments into a template.
type Assembler interface {
	Assemble(template string, fragments []string) (string, error)
}

// Renderer converts an assembled page into a final output format.
type Renderer interface {
	Render(page Page) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
