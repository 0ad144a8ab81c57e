package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	InputPath   string
	LogLevel    string
	LogFormat   string
	Algorithm   string
	Directed    bool
	MetricsFile string
	ShowVersion bool
}

func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Define flags with environment variable fallback
	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("WASTEROUTE_CONFIG", ""),
		"Path to YAML configuration file (env: WASTEROUTE_CONFIG)")

	fs.StringVar(&cfg.InputPath, "input",
		getEnv("WASTEROUTE_INPUT", ""),
		"Path to Overpass JSON street data (env: WASTEROUTE_INPUT)")

	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("WASTEROUTE_LOG_LEVEL", ""),
		"Log level: debug, info, warn, error (env: WASTEROUTE_LOG_LEVEL)")

	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("WASTEROUTE_LOG_FORMAT", ""),
		"Log format: json, text (env: WASTEROUTE_LOG_FORMAT)")

	fs.StringVar(&cfg.Algorithm, "algorithm",
		getEnv("WASTEROUTE_ALGORITHM", ""),
		"Spanning tree algorithm: prim, kruskal (env: WASTEROUTE_ALGORITHM)")

	fs.BoolVar(&cfg.Directed, "directed",
		getEnvBool("WASTEROUTE_DIRECTED", false),
		"Build a directed street graph honoring oneway tags (env: WASTEROUTE_DIRECTED)")

	fs.StringVar(&cfg.MetricsFile, "metrics-file",
		getEnv("WASTEROUTE_METRICS_FILE", ""),
		"Write Prometheus metrics in text format to this file (env: WASTEROUTE_METRICS_FILE)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, `%s - waste collection street coverage

Usage: %s [options]

Options:
`, appName, appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion {
		return nil
	}
	if cfg.InputPath == "" {
		return fmt.Errorf("missing -input")
	}
	if _, err := os.Stat(cfg.InputPath); err != nil {
		return fmt.Errorf("input file not found: %s", cfg.InputPath)
	}

	return nil
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
