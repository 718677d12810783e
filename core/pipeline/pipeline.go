// Package pipeline wires the animalpage stages together:
// load → normalize → render cards → assemble → inspect → render output → write.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/animalpage/core"
	"github.com/gaurav-prasanna/animalpage/core/assemble"
	"github.com/gaurav-prasanna/animalpage/core/inspect"
	"github.com/gaurav-prasanna/animalpage/core/load"
	"github.com/gaurav-prasanna/animalpage/core/normalize"
	"github.com/gaurav-prasanna/animalpage/core/output"
	"github.com/gaurav-prasanna/animalpage/core/render"
)

// Options selects the behaviour of every stage.
type Options struct {
	Format       string
	Placeholder  string
	AllowMissing bool
	Extended     bool
	Sanitize     bool
	// OutputDir resolves relative output paths. Empty means the working directory.
	OutputDir string
	Logger    *slog.Logger
}

// Result is the in-memory outcome of Generate.
type Result struct {
	Page core.Page
	// Records is the number of elements in the input array.
	Records int
	// Cards is the number of cards found in the assembled page.
	Cards int
	// CardNames lists the card titles found in the page, in order.
	CardNames []string
	// Errors holds one core.ErrRecord error per skipped record.
	Errors []error
}

// Rendered is the number of records that became cards.
func (r *Result) Rendered() int {
	return len(r.Page.Animals)
}

// Skipped is the number of records left out.
func (r *Result) Skipped() int {
	return len(r.Errors)
}

// Report summarizes a Run.
type Report struct {
	*Result
	OutputPath string
	Bytes      int
}

// Pipeline holds the configured stages.
type Pipeline struct {
	loader     *load.JSONLoader
	normalizer core.Normalizer
	cards      core.FragmentRenderer
	assembler  core.Assembler
	inspector  *inspect.PageInspector
	renderer   core.Renderer
	writer     *output.Writer
	logger     *slog.Logger
}

// New builds a Pipeline from opts.
func New(opts Options) (*Pipeline, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	renderer, err := render.ForFormat(opts.Format, opts.Extended)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		loader: load.New(),
		normalizer: normalize.New(
			normalize.WithExtended(opts.Extended),
			normalize.WithLogger(logger.With("stage", "normalize")),
		),
		cards: render.NewCardRenderer(
			render.WithExtended(opts.Extended),
			render.WithSanitize(opts.Sanitize),
		),
		assembler: assemble.New(
			assemble.WithPlaceholder(opts.Placeholder),
			assemble.WithAllowMissing(opts.AllowMissing),
		),
		inspector: inspect.New(),
		renderer:  renderer,
		writer:    output.New(opts.OutputDir),
		logger:    logger,
	}, nil
}

// Generate runs the pure part of the pipeline on in-memory inputs.
func (p *Pipeline) Generate(data, template []byte) (*Result, error) {
	// 1. Load
	records, err := p.loader.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return p.generate(records, template)
}

// generate runs every stage after loading.
func (p *Pipeline) generate(records []core.RawRecord, template []byte) (*Result, error) {
	// 2. Normalize; bad records are skipped, not fatal.
	animals, errs := p.normalizer.Normalize(records)

	// 3. Render one card per animal
	fragments := render.RenderAll(p.cards, animals)

	// 4. Assemble
	html, err := p.assembler.Assemble(string(template), fragments)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	// 5. Inspect the result for the title and a card count.
	summary, err := p.inspector.Inspect(html)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}

	return &Result{
		Page: core.Page{
			Title:   summary.Title,
			HTML:    html,
			Animals: animals,
		},
		Records:   len(records),
		Cards:     summary.Cards,
		CardNames: summary.Names,
		Errors:    errs,
	}, nil
}

// Run reads the dataset and template, generates the page and writes it in
// the configured format. IO, data format and template errors abort the run;
// skipped records are reported in the returned Report.
func (p *Pipeline) Run(ctx context.Context, dataPath, templatePath, outputPath string) (*Report, error) {
	records, err := p.loader.LoadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("template: %w", core.IOError(fmt.Sprintf("reading %s", templatePath), err))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := p.generate(records, template)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("cards in page", "cards", result.Cards, "names", result.CardNames)

	if result.Cards != result.Rendered() {
		p.logger.Warn("card count differs from rendered records",
			"cards", result.Cards,
			"rendered", result.Rendered(),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := p.renderer.Render(result.Page)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	path, err := p.writer.Write(outputPath, out, p.renderer.Extension())
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	p.logger.Info("page written",
		"path", path,
		"records", result.Records,
		"rendered", result.Rendered(),
		"skipped", result.Skipped(),
	)

	return &Report{Result: result, OutputPath: path, Bytes: len(out)}, nil
}
