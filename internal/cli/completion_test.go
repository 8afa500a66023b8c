package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/combcap/idcgen/pkg/errors"
)

// completions runs the hidden completion command and returns the offered
// values without the trailing directive line.
func completions(t *testing.T, args ...string) []string {
	t.Helper()
	out, err := execute(t, append([]string{"__complete"}, args...)...)
	if err != nil {
		t.Fatalf("__complete %v: %v", args, err)
	}
	var got []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		name, _, _ := strings.Cut(line, "\t")
		got = append(got, name)
	}
	return got
}

func TestCompletePresets(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"compact", "long-finger", "reference"}},
		{"re", []string{"reference"}},
		{"x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got := completions(t, "generate", "--preset", tt.prefix)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("preset completions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompleteLayers(t *testing.T) {
	got := completions(t, "layout", "--layer", "")
	if diff := cmp.Diff(copperLayers, got); diff != "" {
		t.Errorf("layer completions mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteFormats(t *testing.T) {
	got := completions(t, "generate", "--format", "kicad_mod,s")
	want := []string{"kicad_mod,svg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("format completions mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletionScript(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "idcgen") {
				t.Errorf("completion %s script does not mention idcgen", shell)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", fmt.Errorf("render: %w", context.Canceled), ExitInterrupted},
		{"invalid parameter", fmt.Errorf("compute layout: %w", errors.InvalidParameter("gap", 0.0, "must be positive")), ExitUsage},
		{"unknown preset", errors.New(errors.ErrCodePresetNotFound, "preset %q not found", "x"), ExitUsage},
		{"unknown format", errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", "gif"), ExitUsage},
		{"missing file", errors.New(errors.ErrCodeFileNotFound, "layout %s", "a.json"), ExitFailure},
		{"plain", stderrors.New("disk full"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFromCommand(t *testing.T) {
	_, err := execute(t, "generate", "--preset", "reference", "--gap=0", "-d", t.TempDir())
	if got := ExitCode(err); got != ExitUsage {
		t.Errorf("ExitCode(%v) = %d, want %d", err, got, ExitUsage)
	}
}
