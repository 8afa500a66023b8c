package errors

import (
	"math"
	"testing"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 0.8, false},
		{"tiny", 1e-6, false},

		{"zero", 0, true},
		{"negative", -0.5, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("gap", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidParameter) {
				t.Errorf("ValidatePositive(%v) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateMinInt(t *testing.T) {
	if err := ValidateMinInt("num_fingers", 2, 2); err != nil {
		t.Errorf("ValidateMinInt(2, 2) error = %v, want nil", err)
	}
	if err := ValidateMinInt("num_fingers", 1, 2); err == nil {
		t.Error("ValidateMinInt(1, 2) error = nil, want error")
	}
}

func TestValidateFootprintName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "IDC", false},
		{"valid with dash", "IDC-40", false},
		{"valid with dot", "IDC_0.8mm", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"space", "my idc", true},
		{"slash", "lib/IDC", true},
		{"backslash", "lib\\IDC", true},
		{"traversal", "..IDC", true},
		{"paren", "IDC(1)", true},
		{"quote", `IDC"`, true},
		{"control char", "IDC\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFootprintName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFootprintName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayer(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"F.Cu", false},
		{"B.Cu", false},
		{"In1.Cu", false},
		{"In30.Cu", false},

		{"", true},
		{"F.SilkS", true},
		{"In0.Cu", true},
		{"f.cu", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateLayer(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayer(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "idc.pretty", false},
		{"valid nested", "out/lib/idc.pretty", false},
		{"valid absolute", "/tmp/idc.pretty", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidParameter,
		ErrCodeInvalidLayout,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPreset,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodePresetNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
