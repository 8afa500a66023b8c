package buildinfo

import (
	"strings"
	"testing"
)

func TestGenerator(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "none", "idcgen dev"},
		{"v1.2.0", "abc", "idcgen v1.2.0"},
		{"v1.2.0", "0123456789abcdef", "idcgen v1.2.0 (0123456)"},
	}

	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Generator(); got != tt.want {
			t.Errorf("Generator() = %q, want %q", got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name prefix", got)
	}
	if !strings.Contains(got, Version) {
		t.Errorf("Template() = %q, missing version %q", got, Version)
	}
}
