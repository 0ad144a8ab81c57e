package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/wasteroute/config"
	"github.com/katalvlaran/wasteroute/optimizer"
	"github.com/katalvlaran/wasteroute/prepare"
	"github.com/katalvlaran/wasteroute/report"
	"github.com/katalvlaran/wasteroute/streetnet"
	"github.com/katalvlaran/wasteroute/telemetry"
)

// errNoStreets stops the run before optimization when the input holds no
// usable street segments.
var errNoStreets = errors.New("no street segments in input")

// topStreets is the number of streets listed in the console digest.
const topStreets = 5

type pipeline struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *telemetry.Recorder
	directed bool
	out      io.Writer
}

// run executes collect, prepare, optimize and report.
func (p *pipeline) run(in io.Reader) error {
	p.logger.Info("phase 1: street data", "city", p.cfg.City, "neighborhood", p.cfg.Neighborhood)
	data, err := streetnet.Decode(in)
	if err != nil {
		return err
	}
	raw, stats, err := streetnet.Build(data, streetnet.WithDirected(p.directed))
	if err != nil {
		return err
	}
	p.logger.Info("street graph built",
		"nodes", stats.Nodes,
		"ways", stats.Ways,
		"skipped_ways", stats.SkippedWays,
		"segments", stats.Segments,
		"missing_nodes", stats.MissingNodes,
	)
	for class, n := range stats.RoadClasses {
		p.logger.Debug("road class", "highway", class, "ways", n)
	}
	if raw.EdgeCount() == 0 {
		return errNoStreets
	}
	gs := raw.Stats()
	p.logger.Debug("raw graph",
		"directed", gs.Directed,
		"multigraph", gs.AllowsMulti,
		"vertices", gs.VertexCount,
		"positioned_vertices", gs.PositionedVertices,
		"edges", gs.EdgeCount,
	)

	p.logger.Info("phase 2: optimization", "algorithm", p.cfg.Algorithm)
	prepared, rep := prepare.New(p.cfg, prepare.WithLogger(p.logger)).Prepare(raw)
	p.recorder.AddDefaultedWeights(rep.DefaultedWeights)

	opt, err := optimizer.New(p.cfg, optimizer.WithLogger(p.logger), optimizer.WithRecorder(p.recorder))
	if err != nil {
		return err
	}
	res, err := opt.ComputeOptimizedRoute(prepared)
	if err != nil {
		return err
	}

	p.logger.Info("phase 3: report", "output_dir", p.cfg.OutputDir)
	rows := report.Streets(res.Tree, p.cfg.WeightKey)
	if err := p.writeCSV(rows); err != nil {
		return err
	}
	if err := report.StreetSummary(p.out, p.cfg.Neighborhood, rows, topStreets); err != nil {
		return err
	}

	return report.Summary(p.out, p.cfg.Neighborhood, res.Metrics)
}

func (p *pipeline) writeCSV(rows []report.StreetRow) error {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := p.cfg.ReportPath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	p.logger.Info("report saved", "path", path, "streets", len(rows))

	return nil
}
