// Package config builds the runtime configuration for the extraction
// pipeline. Values come from the process environment (optionally seeded from
// a .env file) and an optional YAML file; the API key is the only required
// setting and its absence fails the run before any document is touched.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/duynguyendang/docdates/pkg/common/errors"
)

// Defaults mirroring the standard layout: documents under ./data, the report
// next to the binary, the oracle cache in its own directory.
const (
	DefaultModel          = "gemini-2.0-flash-exp"
	DefaultEmbeddingModel = "gemini-embedding-001"
	DefaultDocsDir        = "data"
	DefaultOutputPath     = "document_dates_report.xlsx"
	DefaultCacheDir       = "oracle_cache"
)

// Config holds all settings for one pipeline run. It is built once at
// startup and read-only afterwards; components receive it explicitly instead
// of reading process-wide state.
type Config struct {
	// APIKey is the Gemini API key. Required.
	APIKey string
	// Model is the generative model used to answer extraction questions.
	Model string
	// EmbeddingModel is the model used to embed document chunks.
	EmbeddingModel string
	// DocsDir is the directory holding the input documents.
	DocsDir string
	// OutputPath is where the Excel report is written.
	OutputPath string
	// CacheDir is the on-disk embedding cache directory. Empty disables
	// the disk layer (the in-memory layer stays on).
	CacheDir string
	// ContinueOnError records a sentinel value for documents whose
	// extraction failed instead of aborting the whole run.
	ContinueOnError bool
}

// fileConfig is the YAML shape of an optional config file.
type fileConfig struct {
	Model           string  `yaml:"model"`
	EmbeddingModel  string  `yaml:"embedding_model"`
	DocsDir         string  `yaml:"docs_dir"`
	OutputPath      string  `yaml:"output_path"`
	CacheDir        *string `yaml:"cache_dir"`
	ContinueOnError *bool   `yaml:"continue_on_error"`
}

// Load builds a Config from defaults, the optional YAML file at path (empty
// path means no file), and the environment. Environment wins over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Model:          DefaultModel,
		EmbeddingModel: DefaultEmbeddingModel,
		DocsDir:        DefaultDocsDir,
		OutputPath:     DefaultOutputPath,
		CacheDir:       DefaultCacheDir,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		applyFile(cfg, fc)
	}

	applyEnv(cfg)

	if cfg.APIKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	return cfg, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.EmbeddingModel != "" {
		cfg.EmbeddingModel = fc.EmbeddingModel
	}
	if fc.DocsDir != "" {
		cfg.DocsDir = fc.DocsDir
	}
	if fc.OutputPath != "" {
		cfg.OutputPath = fc.OutputPath
	}
	if fc.CacheDir != nil {
		cfg.CacheDir = *fc.CacheDir
	}
	if fc.ContinueOnError != nil {
		cfg.ContinueOnError = *fc.ContinueOnError
	}
}

func applyEnv(cfg *Config) {
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Model = model
	}
	if model := os.Getenv("GEMINI_EMBEDDING_MODEL"); model != "" {
		cfg.EmbeddingModel = model
	}
}
