// Package cmd — generate command.
// This is the main command that orchestrates the pipeline:
// load → normalize → render → assemble → write.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/animalpage/core/pipeline"
	"github.com/gaurav-prasanna/animalpage/internal/config"
	"github.com/gaurav-prasanna/animalpage/internal/logger"
)

// generateFlags holds the flag values of one generate command. Defaults
// come from config.Default; a flag only wins when it was set on the
// command line.
type generateFlags struct {
	config       string
	data         string
	template     string
	output       string
	format       string
	placeholder  string
	allowMissing bool
	extended     bool
	sanitize     bool
	logLevel     string
	logFormat    string
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the animal page from a dataset and a template",
		Long: `Generate loads the JSON dataset, renders one card per animal and writes the
template with the placeholder replaced by the cards.

The output path gets the format's extension when it has none, so the default
output is animals.html, animals.md, animals.pdf or animals.json.

Configuration precedence: flags > ANIMALPAGE_* environment > --config file > defaults.

Examples:
  animalpage generate
  animalpage generate --data zoo.json --template page.html --output site/index.html
  animalpage generate --extended --format pdf
  animalpage generate --config animalpage.yaml --log-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, f)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()

	flags.StringVar(&f.config, "config", "", "YAML config file")

	// Inputs and output.
	flags.StringVar(&f.data, "data", defaults.Input.Data, "JSON dataset path")
	flags.StringVar(&f.template, "template", defaults.Input.Template, "HTML template path")
	flags.StringVar(&f.output, "output", defaults.Output.Path, "Output path (format extension added when missing)")
	flags.StringVar(&f.format, "format", defaults.Output.Format, "Output format: html, markdown, pdf or json")

	// Rendering.
	flags.StringVar(&f.placeholder, "placeholder", defaults.Render.Placeholder, "Template placeholder token")
	flags.BoolVar(&f.allowMissing, "allow-missing-placeholder", false, "Leave a template without the placeholder unchanged instead of failing")
	flags.BoolVar(&f.extended, "extended", false, "Include taxonomy and characteristics lines")
	flags.BoolVar(&f.sanitize, "sanitize", false, "Strip markup from field values")

	// Logging.
	flags.StringVar(&f.logLevel, "log-level", defaults.Log.Level, "Log level: debug, info, warn or error")
	flags.StringVar(&f.logFormat, "log-format", defaults.Log.Format, "Log format: pretty or json")

	return cmd
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	cfg, err := loadConfig(cmd.Flags(), f)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Format: cfg.Log.Format,
		Level:  logger.ParseLevel(cfg.Log.Level),
	})

	p, err := pipeline.New(pipeline.Options{
		Format:       cfg.Output.Format,
		Placeholder:  cfg.Render.Placeholder,
		AllowMissing: cfg.Render.AllowMissingPlaceholder,
		Extended:     cfg.Render.Extended,
		Sanitize:     cfg.Render.Sanitize,
		Logger:       log,
	})
	if err != nil {
		return err
	}

	report, err := p.Run(cmd.Context(), cfg.Input.Data, cfg.Input.Template, cfg.Output.Path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%d cards", report.OutputPath, report.Rendered())
	if report.Skipped() > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d records skipped", report.Skipped())
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")
	return nil
}

// loadConfig layers defaults, the config file, the environment and the
// flags that were explicitly set, then validates the result.
func loadConfig(flags *pflag.FlagSet, f *generateFlags) (*config.Config, error) {
	cfg := config.Default()

	if f.config != "" {
		if err := cfg.LoadFile(f.config); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	overrides := []struct {
		name  string
		apply func()
	}{
		{"data", func() { cfg.Input.Data = f.data }},
		{"template", func() { cfg.Input.Template = f.template }},
		{"output", func() { cfg.Output.Path = f.output }},
		{"format", func() { cfg.Output.Format = f.format }},
		{"placeholder", func() { cfg.Render.Placeholder = f.placeholder }},
		{"allow-missing-placeholder", func() { cfg.Render.AllowMissingPlaceholder = f.allowMissing }},
		{"extended", func() { cfg.Render.Extended = f.extended }},
		{"sanitize", func() { cfg.Render.Sanitize = f.sanitize }},
		{"log-level", func() { cfg.Log.Level = f.logLevel }},
		{"log-format", func() { cfg.Log.Format = f.logFormat }},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
