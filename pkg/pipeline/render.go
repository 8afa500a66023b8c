package pipeline

import (
	"context"

	"github.com/combcap/idcgen/pkg/cache"
	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/idc"
	"github.com/combcap/idcgen/pkg/sink"
)

// RenderFromLayout renders every requested format of a layout in memory.
// Options must already carry defaults; see [Options.ValidateForRender].
func RenderFromLayout(ctx context.Context, l idc.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := RenderFormat(ctx, l, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(ctx context.Context, l idc.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatKiCad:
		return sink.RenderKiCad(l, kicadOptions(opts)...), nil
	case FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONName(opts.Name), sink.WithJSONLayer(opts.Layer))
	case FormatSVG:
		return sink.RenderSVG(l, svgOptions(opts)...), nil
	case FormatPDF:
		svg := sink.RenderSVG(l, svgOptions(opts)...)
		return convertCached(ctx, opts, cache.ArtifactKey(format, svg), func() ([]byte, error) {
			return sink.ToPDF(svg)
		})
	case FormatPNG:
		svg := sink.RenderSVG(l, svgOptions(opts)...)
		return convertCached(ctx, opts, cache.ArtifactKey(format, svg, opts.Scale), func() ([]byte, error) {
			return sink.ToPNG(svg, opts.Scale)
		})
	case FormatDOT:
		return []byte(sink.ToDOT(l)), nil
	case FormatNetSVG:
		dot := sink.ToDOT(l)
		return convertCached(ctx, opts, cache.ArtifactKey(format, []byte(dot)), func() ([]byte, error) {
			return sink.RenderNetSVG(ctx, dot)
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// convertCached returns a cached conversion or runs convert and stores its
// output. Cache failures are logged and never fail the render.
func convertCached(ctx context.Context, opts Options, key string, convert func() ([]byte, error)) ([]byte, error) {
	if opts.Cache == nil {
		return convert()
	}
	data, hit, err := opts.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Warn("cache read failed", "key", key, "error", err)
	}
	if hit {
		opts.Logger.Debug("cache hit", "key", key)
		return data, nil
	}

	data, err = convert()
	if err != nil {
		return nil, err
	}
	if err := opts.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		opts.Logger.Warn("cache write failed", "key", key, "error", err)
	}
	return data, nil
}

func kicadOptions(opts Options) []sink.KiCadOption {
	out := []sink.KiCadOption{
		sink.WithName(opts.Name),
		sink.WithLayer(opts.Layer),
		sink.WithTimestamp(opts.Timestamp),
	}
	if opts.Header {
		out = append(out, sink.WithHeader())
	}
	if opts.Centered {
		out = append(out, sink.WithCentered())
	}
	return out
}

func svgOptions(opts Options) []sink.SVGOption {
	out := []sink.SVGOption{sink.WithPixelsPerMM(opts.PixelsPerMM)}
	if opts.Dimensions {
		out = append(out, sink.WithDimensions())
	}
	return out
}
