package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/observability"
	"github.com/combcap/idcgen/pkg/pipeline"
)

// outputPaths maps each format to its destination. With a single format
// and an explicit output, that path is used verbatim; otherwise output (or
// dir/base) is a base path and each format appends its extension.
func outputPaths(dir, base, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	stem := filepath.Join(dir, base)
	if output != "" {
		stem = trimKnownExt(output)
	}
	for _, f := range formats {
		paths[f] = stem + pipeline.Extension(f)
	}
	return paths
}

func trimKnownExt(path string) string {
	for _, f := range pipeline.FormatNames() {
		if ext := pipeline.Extension(f); strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path
}

// writeArtifacts writes already rendered artifacts in format order. All
// paths are validated before the first file is created.
func writeArtifacts(ctx context.Context, artifacts map[string][]byte, paths map[string]string, formats []string) ([]string, error) {
	for _, f := range formats {
		if err := errors.ValidatePath(paths[f]); err != nil {
			return nil, err
		}
	}

	hooks := observability.Output()
	written := make([]string, 0, len(formats))
	for _, f := range formats {
		path := paths[f]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				hooks.OnWriteError(ctx, f, path, err)
				return written, fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			hooks.OnWriteError(ctx, f, path, err)
			return written, fmt.Errorf("write %s: %w", f, err)
		}
		hooks.OnWrite(ctx, f, path, len(artifacts[f]))
		written = append(written, path)
	}
	return written, nil
}
