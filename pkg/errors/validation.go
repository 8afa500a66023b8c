package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePositive checks that a dimension in millimetres is a finite
// number greater than zero.
func ValidatePositive(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidParameter(param, v, "must be a finite number")
	}
	if v <= 0 {
		return InvalidParameter(param, v, "must be greater than 0")
	}
	return nil
}

// ValidateMinInt checks that an integer parameter is at least min.
func ValidateMinInt(param string, v, min int) error {
	if v < min {
		return InvalidParameter(param, v, "must be at least %d", min)
	}
	return nil
}

// ValidateFootprintName validates a footprint name for safety and for use
// as a file name inside a .pretty library.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateFootprintName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "footprint name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "footprint name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "footprint name contains whitespace or control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "footprint name cannot contain path components: %q", name)
	}

	// Parentheses and quotes would break the s-expression header.
	if strings.ContainsAny(name, `()"`) {
		return New(ErrCodeInvalidInput, "footprint name contains invalid characters: %q", name)
	}

	return nil
}

// copperLayerRegex matches KiCad copper layer names (F.Cu, B.Cu, In1.Cu ...).
var copperLayerRegex = regexp.MustCompile(`^(F|B|In[1-9][0-9]?)\.Cu$`)

// ValidateLayer checks that layer names a single copper layer.
func ValidateLayer(layer string) error {
	if !copperLayerRegex.MatchString(layer) {
		return New(ErrCodeInvalidInput, "invalid copper layer: %q (expected F.Cu, B.Cu or InN.Cu)", layer)
	}
	return nil
}

// ValidatePath validates an output directory or file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
