package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "animals_data.json", cfg.Input.Data)
	assert.Equal(t, "animals_template.html", cfg.Input.Template)
	assert.Equal(t, "animals", cfg.Output.Path)
	assert.Equal(t, "__REPLACE_ANIMALS_INFO__", cfg.Render.Placeholder)
	assert.False(t, cfg.Render.AllowMissingPlaceholder)
}

func TestValidate_Formats(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"html", true},
		{"markdown", true},
		{"pdf", true},
		{"json", true},
		{"docx", false},
		{"", false},
		{"HTML", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := Default()
			cfg.Output.Format = tt.format

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Output.Format")
			}
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Input.Data = ""
	cfg.Render.Placeholder = ""
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Input.Data is required")
	assert.Contains(t, err.Error(), "Render.Placeholder is required")
	assert.Contains(t, err.Error(), `Log.Level must be one of [debug info warn warning error], got "loud"`)
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animalpage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  data: zoo.json
output:
  format: markdown
render:
  extended: true
  allow_missing_placeholder: true
`), 0o644))

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "zoo.json", cfg.Input.Data)
	assert.Equal(t, "animals_template.html", cfg.Input.Template)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "animals", cfg.Output.Path)
	assert.True(t, cfg.Render.Extended)
	assert.True(t, cfg.Render.AllowMissingPlaceholder)
	assert.Equal(t, "__REPLACE_ANIMALS_INFO__", cfg.Render.Placeholder)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := Default().LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("input: [unclosed"), 0o644))
	err = Default().LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ANIMALPAGE_DATA":      "env.json",
		"ANIMALPAGE_FORMAT":    "pdf",
		"ANIMALPAGE_SANITIZE":  "true",
		"ANIMALPAGE_EXTENDED":  "",
		"ANIMALPAGE_LOG_LEVEL": "debug",
		"OTHER_DATA":           "ignored.json",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "env.json", cfg.Input.Data)
	assert.Equal(t, "pdf", cfg.Output.Format)
	assert.True(t, cfg.Render.Sanitize)
	assert.False(t, cfg.Render.Extended)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "animals_template.html", cfg.Input.Template)
}

func TestApplyEnv_BadBool(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "ANIMALPAGE_EXTENDED" {
			return "sometimes", true
		}
		return "", false
	}

	err := Default().ApplyEnv(lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANIMALPAGE_EXTENDED")
}
