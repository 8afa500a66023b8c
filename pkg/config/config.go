// Package config loads named capacitor presets from TOML or YAML files.
//
// A preset file holds a defaults table and a map of named presets. Keys are
// snake_case and match the flags of the generate command:
//
//	[defaults]
//	layer = "F.Cu"
//	gap   = 0.5
//
//	[presets.reference]
//	description = "40 finger reference part"
//	track_width = 0.8
//	total_width = 15
//	num_fingers = 40
//
// [Config.Resolve] merges a preset over the defaults. A zero value means
// "unset" throughout, which is consistent with [idc.Parameters], where every
// dimension must be positive anyway.
//
// [idc.Parameters]: github.com/combcap/idcgen/pkg/idc.Parameters
package config

import (
	"bytes"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/idc"
)

const (
	appName = "idcgen"

	// DefaultFile is the preset file name looked up by [LoadDefault].
	DefaultFile = "presets.toml"
)

// Preset is one named parameter set.
type Preset struct {
	Description string `toml:"description" yaml:"description"`

	// Footprint settings
	Name  string `toml:"name" yaml:"name"`
	Layer string `toml:"layer" yaml:"layer"`

	// Geometry in millimetres
	TrackWidth           float64 `toml:"track_width" yaml:"track_width"`
	Gap                  float64 `toml:"gap" yaml:"gap"`
	TotalWidth           float64 `toml:"total_width" yaml:"total_width"`
	FingerLength         float64 `toml:"finger_length" yaml:"finger_length"`
	NumFingers           int     `toml:"num_fingers" yaml:"num_fingers"`
	ConnectingTrackWidth float64 `toml:"connecting_track_width" yaml:"connecting_track_width"`
	MaxAspectRatio       float64 `toml:"max_aspect_ratio" yaml:"max_aspect_ratio"`
}

// Parameters converts the preset to synthesizer parameters.
func (p Preset) Parameters() idc.Parameters {
	return idc.Parameters{
		TrackWidth:           p.TrackWidth,
		Gap:                  p.Gap,
		TotalWidth:           p.TotalWidth,
		FingerLength:         p.FingerLength,
		NumFingers:           p.NumFingers,
		ConnectingTrackWidth: p.ConnectingTrackWidth,
		MaxAspectRatio:       p.MaxAspectRatio,
	}
}

// Over returns p with every field that is unset in p taken from base.
//
// A preset that sets a finger length also clears an inherited total width,
// and vice versa, so a preset can switch sizing modes.
func (p Preset) Over(base Preset) Preset {
	out := base
	if p.Description != "" {
		out.Description = p.Description
	}
	if p.Name != "" {
		out.Name = p.Name
	}
	if p.Layer != "" {
		out.Layer = p.Layer
	}
	if p.TrackWidth != 0 {
		out.TrackWidth = p.TrackWidth
	}
	if p.Gap != 0 {
		out.Gap = p.Gap
	}
	if p.TotalWidth != 0 {
		out.TotalWidth = p.TotalWidth
		out.FingerLength = p.FingerLength
	}
	if p.FingerLength != 0 {
		out.FingerLength = p.FingerLength
		out.TotalWidth = p.TotalWidth
	}
	if p.NumFingers != 0 {
		out.NumFingers = p.NumFingers
	}
	if p.ConnectingTrackWidth != 0 {
		out.ConnectingTrackWidth = p.ConnectingTrackWidth
	}
	if p.MaxAspectRatio != 0 {
		out.MaxAspectRatio = p.MaxAspectRatio
	}
	return out
}

func (p Preset) validate(name string) error {
	fields := []struct {
		key string
		v   float64
	}{
		{"track_width", p.TrackWidth},
		{"gap", p.Gap},
		{"total_width", p.TotalWidth},
		{"finger_length", p.FingerLength},
		{"num_fingers", float64(p.NumFingers)},
		{"connecting_track_width", p.ConnectingTrackWidth},
		{"max_aspect_ratio", p.MaxAspectRatio},
	}
	for _, f := range fields {
		if f.v < 0 {
			return errors.Wrap(errors.ErrCodeInvalidPreset,
				errors.InvalidParameter(f.key, f.v, "must not be negative"), "preset %q", name)
		}
	}
	if p.Name != "" {
		if err := errors.ValidateFootprintName(p.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
		}
	}
	if p.Layer != "" {
		if err := errors.ValidateLayer(p.Layer); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
		}
	}
	return nil
}

// Config is a parsed preset file.
type Config struct {
	Defaults Preset            `toml:"defaults" yaml:"defaults"`
	Presets  map[string]Preset `toml:"presets" yaml:"presets"`

	// path is the file the config was loaded from, empty for built-ins.
	path string
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// Names returns the preset names in sorted order.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Presets))
}

// Resolve returns the named preset merged over the defaults. An empty name
// returns the defaults alone.
func (c *Config) Resolve(name string) (Preset, error) {
	if name == "" {
		return c.Defaults, nil
	}
	p, ok := c.Presets[name]
	if !ok {
		msg := "unknown preset %q"
		if names := c.Names(); len(names) > 0 {
			return Preset{}, errors.New(errors.ErrCodePresetNotFound, msg+" (available: %s)", name, strings.Join(names, ", "))
		}
		return Preset{}, errors.New(errors.ErrCodePresetNotFound, msg, name)
	}
	return p.Over(c.Defaults), nil
}

// Merge returns a config holding c's presets overridden by other's. Defaults
// are merged field by field in the same way.
func (c *Config) Merge(other *Config) *Config {
	out := &Config{
		Defaults: other.Defaults.Over(c.Defaults),
		Presets:  maps.Clone(c.Presets),
		path:     other.path,
	}
	if out.Presets == nil {
		out.Presets = make(map[string]Preset)
	}
	maps.Copy(out.Presets, other.Presets)
	return out
}

func (c *Config) validate() error {
	if err := c.Defaults.validate("defaults"); err != nil {
		return err
	}
	for _, name := range c.Names() {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrCodeInvalidPreset, "preset name must not be empty")
		}
		if err := c.Presets[name].validate(name); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a preset file. The format follows the extension: .toml, or
// .yaml/.yml.
func Load(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read preset file %s", path)
	}

	c, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

// Parse decodes a preset document. Unknown keys are rejected so that a
// misspelled parameter does not silently fall back to a default.
func Parse(data []byte, format string) (*Config, error) {
	var c Config
	switch strings.ToLower(format) {
	case "toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode TOML presets")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown key %q", undecoded[0].String())
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode YAML presets")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported preset format %q (must be one of: toml, yaml, yml)", format)
	}

	if c.Presets == nil {
		c.Presets = make(map[string]Preset)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Builtin returns the presets that ship with the generator.
func Builtin() *Config {
	return &Config{
		Defaults: Preset{Name: "IDC", Layer: "F.Cu"},
		Presets: map[string]Preset{
			"reference": {
				Description: "40 finger part, 15 mm wide",
				TrackWidth:  0.8,
				Gap:         0.5,
				TotalWidth:  15,
				NumFingers:  40,
			},
			"compact": {
				Description: "small 10 finger part for tight spaces",
				TrackWidth:  0.2,
				Gap:         0.2,
				TotalWidth:  3,
				NumFingers:  10,
			},
			"long-finger": {
				Description:  "8 fingers sized by a 10 mm finger length",
				TrackWidth:   0.5,
				Gap:          1,
				FingerLength: 10,
				NumFingers:   8,
			},
		},
	}
}

// DefaultPath returns the preset file location using the XDG standard
// (~/.config/idcgen/presets.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, DefaultFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, DefaultFile), nil
}

// LoadDefault returns the built-in presets overlaid with the user preset
// file, if one exists at [DefaultPath].
func LoadDefault() (*Config, error) {
	builtin := Builtin()
	path, err := DefaultPath()
	if err != nil {
		return builtin, nil
	}
	user, err := Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return builtin, nil
		}
		return nil, err
	}
	return builtin.Merge(user), nil
}

// LoadWith returns the built-in presets overlaid with the file at path. An
// empty path behaves like [LoadDefault].
func LoadWith(path string) (*Config, error) {
	if path == "" {
		return LoadDefault()
	}
	user, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Builtin().Merge(user), nil
}
