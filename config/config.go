// Package config holds the typed configuration of a wasteroute run: which
// spanning tree algorithm to use, which edge attribute to minimize, how to
// repair missing weights, and where reports go.
//
// Configuration is a plain value passed into constructors. Load reads YAML
// over Default(), so a file only needs the keys it changes; unknown keys are
// rejected to catch typos early.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Supported spanning tree algorithms.
const (
	AlgorithmPrim    = "prim"
	AlgorithmKruskal = "kruskal"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the complete run configuration.
type Config struct {
	Algorithm             string  `yaml:"algorithm"`
	WeightKey             string  `yaml:"weightKey"`
	DefaultWeightFallback float64 `yaml:"defaultWeightFallback"`

	City         string `yaml:"city"`
	Neighborhood string `yaml:"neighborhood"`

	OutputDir  string `yaml:"outputDir"`
	ReportFile string `yaml:"reportFile"`

	LogLevel  string `yaml:"logLevel"`  // debug, info, warn, error
	LogFormat string `yaml:"logFormat"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm:             AlgorithmPrim,
		WeightKey:             "length",
		DefaultWeightFallback: 100.0,
		City:                  "Montes Claros, MG, Brasil",
		Neighborhood:          "Belvedere",
		OutputDir:             "resultados",
		ReportFile:            "ruas_otimizadas.csv",
		LogLevel:              "info",
		LogFormat:             LogFormatText,
	}
}

// Load reads a YAML file over Default() and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads YAML from r over Default() and validates the result.
// An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables named
// <prefix>_ALGORITHM, <prefix>_WEIGHT_KEY, <prefix>_DEFAULT_WEIGHT,
// <prefix>_NEIGHBORHOOD, <prefix>_OUTPUT_DIR, <prefix>_LOG_LEVEL and
// <prefix>_LOG_FORMAT. Unparsable numbers are reported as ErrInvalidConfig.
func (c *Config) ApplyEnv(prefix string) error {
	if val := os.Getenv(prefix + "_ALGORITHM"); val != "" {
		c.Algorithm = val
	}
	if val := os.Getenv(prefix + "_WEIGHT_KEY"); val != "" {
		c.WeightKey = val
	}
	if val := os.Getenv(prefix + "_DEFAULT_WEIGHT"); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%w: %s_DEFAULT_WEIGHT=%q", ErrInvalidConfig, prefix, val)
		}
		c.DefaultWeightFallback = f
	}
	if val := os.Getenv(prefix + "_NEIGHBORHOOD"); val != "" {
		c.Neighborhood = val
	}
	if val := os.Getenv(prefix + "_OUTPUT_DIR"); val != "" {
		c.OutputDir = val
	}
	if val := os.Getenv(prefix + "_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv(prefix + "_LOG_FORMAT"); val != "" {
		c.LogFormat = val
	}
	c.Normalize()

	return nil
}

// Validate checks the configuration. Every error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmPrim, AlgorithmKruskal:
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	if c.WeightKey == "" {
		return fmt.Errorf("%w: weightKey is required", ErrInvalidConfig)
	}
	if !(c.DefaultWeightFallback > 0) || math.IsInf(c.DefaultWeightFallback, 0) {
		return fmt.Errorf("%w: defaultWeightFallback must be positive, got %v", ErrInvalidConfig, c.DefaultWeightFallback)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unsupported logFormat %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// ReportPath joins OutputDir and ReportFile.
func (c Config) ReportPath() string {
	return filepath.Join(c.OutputDir, c.ReportFile)
}

// Normalize trims and lowercases enumerated values. Load, Decode and ApplyEnv
// call it; callers that set fields directly should call it before Validate.
func (c *Config) Normalize() {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}
