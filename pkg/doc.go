// Package pkg provides the libraries behind idcgen, the interdigitated
// capacitor footprint generator.
//
// # Overview
//
// An interdigitated (comb) capacitor is two interleaved copper combs. Each
// comb is a bus bar with fingers that reach towards the opposite bar, and
// adjacent fingers belong to opposite nets. The pkg directory is organized
// around that geometry:
//
//  1. [idc] - Parameters, synthesis and verification of the comb layout
//  2. [sink] - Output formats (KiCad footprint, JSON, SVG, PDF, PNG, DOT)
//  3. [pipeline] - Orchestration (synthesize → verify → render)
//  4. [config] - Named parameter presets from TOML or YAML files
//  5. [cache] - Reuse of slow preview conversions between runs
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	Parameters (flags, preset file)
//	         ↓
//	    [idc] Synthesize + Verify
//	         ↓
//	    [sink] renderers
//	         ↓
//	    .kicad_mod / JSON / SVG / PDF / PNG / DOT output
//
// # Quick Start
//
//	import (
//	    "github.com/combcap/idcgen/pkg/idc"
//	    "github.com/combcap/idcgen/pkg/sink"
//	)
//
//	l, err := idc.Synthesize(idc.Parameters{
//	    TrackWidth: 0.8,
//	    Gap:        0.5,
//	    TotalWidth: 15,
//	    NumFingers: 40,
//	})
//	if err != nil {
//	    return err // *errors.InvalidParameterError
//	}
//	mod := sink.RenderKiCad(l, sink.WithName("C1"))
//
// [idc]: github.com/combcap/idcgen/pkg/idc
// [sink]: github.com/combcap/idcgen/pkg/sink
// [pipeline]: github.com/combcap/idcgen/pkg/pipeline
// [config]: github.com/combcap/idcgen/pkg/config
// [cache]: github.com/combcap/idcgen/pkg/cache
// [errors]: github.com/combcap/idcgen/pkg/errors
// [observability]: github.com/combcap/idcgen/pkg/observability
// [buildinfo]: github.com/combcap/idcgen/pkg/buildinfo
package pkg
