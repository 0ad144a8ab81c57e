// Package main runs the waste collection street coverage pipeline:
// load OpenStreetMap street data, prepare the graph, compute the minimum
// spanning tree and write the street report.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/wasteroute/config"
	"github.com/katalvlaran/wasteroute/telemetry"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "wasteroute"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("wasteroute failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cli.ShowVersion {
		_, err = fmt.Fprintf(stdout, "%s %s\n", appName, Version)
		return err
	}
	if err = validateFlags(cli); err != nil {
		return err
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	logger := setupLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	in, err := os.Open(cli.InputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	p := &pipeline{cfg: cfg, logger: logger, recorder: rec, directed: cli.Directed, out: stdout}
	runErr := p.run(in)

	if cli.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cli.MetricsFile, reg); err != nil {
			logger.Warn("failed to write metrics file", "path", cli.MetricsFile, "error", err)
		}
	}

	return runErr
}

// loadConfig layers defaults, the YAML file, WASTEROUTE_* environment
// variables and explicit flags, then validates the result.
func loadConfig(cli *CLIConfig) (config.Config, error) {
	cfg := config.Default()
	if cli.ConfigPath != "" {
		loaded, err := config.Load(cli.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv("WASTEROUTE"); err != nil {
		return config.Config{}, err
	}
	if cli.Algorithm != "" {
		cfg.Algorithm = cli.Algorithm
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.LogFormat = cli.LogFormat
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
