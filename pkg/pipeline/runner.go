package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/combcap/idcgen/pkg/idc"
	"github.com/combcap/idcgen/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
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

// Execute runs the complete synthesize → render pipeline. Every artifact is
// rendered in memory; nothing is written to disk.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Synthesize
	synthStart := time.Now()
	l, err := r.Synthesize(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.SynthesisTime = time.Since(synthStart)
	result.Stats.Fingers = len(l.Fingers)
	result.Stats.FingersA = l.Count(idc.NetA)
	result.Stats.FingersB = l.Count(idc.NetB)
	result.Stats.Segments = len(l.Fingers) + 2

	opts.Logger.Info("synthesized layout",
		"fingers", result.Stats.Fingers,
		"span", l.Width(),
		"total_width", l.Height(),
		"duration", result.Stats.SynthesisTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Synthesize computes and verifies the layout described by opts.Params.
// Parameter errors are returned unwrapped so callers can inspect the
// *errors.InvalidParameterError directly.
func (r *Runner) Synthesize(ctx context.Context, opts Options) (l idc.Layout, err error) {
	if err := ctx.Err(); err != nil {
		return idc.Layout{}, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnSynthesizeStart(ctx, opts.Params.NumFingers)
	start := time.Now()
	defer func() {
		segments := 0
		if err == nil {
			segments = len(l.Segments())
		}
		hooks.OnSynthesizeComplete(ctx, opts.Params.NumFingers, segments, time.Since(start), err)
	}()

	l, err = idc.Synthesize(opts.Params)
	if err != nil {
		return idc.Layout{}, err
	}
	if err := l.Verify(); err != nil {
		return idc.Layout{}, fmt.Errorf("verify: %w", err)
	}

	opts.Logger.Debug("resolved parameters",
		"track_width", l.Params.TrackWidth,
		"gap", l.Params.Gap,
		"connecting_track_width", l.Params.ConnectingTrackWidth,
		"finger_length", l.FingerLength,
		"pitch", l.Pitch)
	return l, nil
}

// Render renders an existing layout in every requested format.
func (r *Runner) Render(ctx context.Context, l idc.Layout, opts Options) (artifacts map[string][]byte, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	opts.Logger.Debug("rendering", "formats", opts.Formats, "name", opts.Name, "layer", opts.Layer)
	return RenderFromLayout(ctx, l, opts)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
