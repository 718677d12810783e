// Package config provides animalpage configuration with support for a YAML
// file, ANIMALPAGE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "ANIMALPAGE_"

// Config holds the generator configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig locates the dataset and template.
type InputConfig struct {
	Data     string `yaml:"data" validate:"required"`
	Template string `yaml:"template" validate:"required"`
}

// OutputConfig controls where and in which format the page is written.
type OutputConfig struct {
	// Path without an extension gets the format's extension appended.
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format" validate:"oneof=html markdown pdf json"`
}

// RenderConfig controls card rendering and template substitution.
type RenderConfig struct {
	Placeholder string `yaml:"placeholder" validate:"required"`
	// AllowMissingPlaceholder returns the template unchanged instead of failing.
	AllowMissingPlaceholder bool `yaml:"allow_missing_placeholder"`
	Extended                bool `yaml:"extended"`
	Sanitize                bool `yaml:"sanitize"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=json pretty"`
}

// Default returns the configuration used when nothing overrides it. The
// output path has no extension so the writer adds the one matching the
// format: animals.html, animals.pdf and so on.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Data:     "animals_data.json",
			Template: "animals_template.html",
		},
		Output: OutputConfig{
			Path:   "animals",
			Format: "html",
		},
		Render: RenderConfig{
			Placeholder: "__REPLACE_ANIMALS_INFO__",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// LoadFile merges the YAML file at path over c. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with ANIMALPAGE_* variables found through lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strVars := map[string]*string{
		"DATA":        &c.Input.Data,
		"TEMPLATE":    &c.Input.Template,
		"OUTPUT":      &c.Output.Path,
		"FORMAT":      &c.Output.Format,
		"PLACEHOLDER": &c.Render.Placeholder,
		"LOG_LEVEL":   &c.Log.Level,
		"LOG_FORMAT":  &c.Log.Format,
	}
	for name, dst := range strVars {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	boolVars := map[string]*bool{
		"ALLOW_MISSING_PLACEHOLDER": &c.Render.AllowMissingPlaceholder,
		"EXTENDED":                  &c.Render.Extended,
		"SANITIZE":                  &c.Render.Sanitize,
	}
	var errs []error
	for name, dst := range boolVars {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			continue
		}
		*dst = b
	}
	return errors.Join(errs...)
}

// Validate checks the configuration and reports every invalid field.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Namespace(), friendlyMessage(e)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", e.Param(), e.Value())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
