package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Runner executes the pipeline with a shared logger.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.Logger.Debug("pipeline options", "options", opts.String())

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	root, stats, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Root = root
	result.Stats.ParseTime = time.Since(loadStart)
	result.Stats.Records = stats.Records
	result.Stats.Skipped = stats.Skipped
	result.Stats.NodeCount = stats.Nodes

	r.Logger.Info("loaded tree",
		"nodes", stats.Nodes,
		"skipped", stats.Skipped,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	result.Bands = Layout(ctx, root, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BandCount = len(result.Bands)

	r.Logger.Info("computed layout",
		"bands", len(result.Bands),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, root, result.Bands, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
