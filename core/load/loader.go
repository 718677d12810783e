// Package load implements the Loader interface.
// It decodes the dataset file into raw records without checking the shape
// of individual elements; that is the normalizer's job.
package load

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/gaurav-prasanna/animalpage/core"
)

// JSONLoader decodes a JSON array of animal objects.
type JSONLoader struct{}

// New creates a JSONLoader.
func New() *JSONLoader {
	return &JSONLoader{}
}

// LoadFile opens path and loads its records.
func (l *JSONLoader) LoadFile(path string) ([]core.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.IOError(fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	return l.Load(f)
}

// Load reads a whole JSON document from r. Unreadable input and invalid
// syntax are IO errors; a valid document whose top-level value is not an
// array is a data format error.
func (l *JSONLoader) Load(r io.Reader) ([]core.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, core.IOError("reading dataset", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, core.IOError("decoding dataset", err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, core.DataFormatError(fmt.Sprintf("top-level value is %s, want array", core.JSONType(doc)))
	}

	records := make([]core.RawRecord, len(items))
	for i, item := range items {
		records[i] = core.RawRecord{Index: i, Value: item}
	}
	return records, nil
}
