// Package pkg provides the core libraries for epistack HEMT structure modeling.
//
// # Overview
//
// Epistack describes the epitaxial layer stack of an InGaN/GaN high electron
// mobility transistor, derives the vertical geometry of the stack and writes
// it out for device simulation. The pkg directory is organized as:
//
//  1. [stack] - Layers, contacts and the ordered layer stack
//  2. [geometry] - Layer boundaries and the 2DEG depth
//  3. [device] - Complete structures: substrate, dimensions, reference stack
//  4. [io] - TCAD script export and the JSON interchange format
//  5. [config] - TOML structure descriptions
//  6. [errors] - Coded errors shared by every package
//
// # Architecture
//
// The typical data flow:
//
//	TOML description / JSON document / built-in reference
//	         ↓
//	    [config] or [io] (decode and validate)
//	         ↓
//	    [device] structure holding a [stack] layer stack
//	         ↓
//	    [geometry] (regions, boundaries, 2DEG)
//	         ↓
//	    TCAD script / JSON document
//
// # Quick Start
//
// Build the reference structure, add a back barrier and export it:
//
//	import (
//	    "github.com/matzehuels/epistack/pkg/device"
//	    "github.com/matzehuels/epistack/pkg/io"
//	)
//
//	s, err := device.NewDefault(device.SubstrateSiC, device.DefaultDimensions())
//	if err != nil {
//	    return err
//	}
//	if err := s.AddBackBarrier(device.DefaultBackBarrier()); err != nil {
//	    return err
//	}
//	fmt.Println(s.Geometry().TwoDEGOffset()) // 18.5
//	return io.ExportTCAD(s, "hemt.cmd")
//
// # Units
//
// Layer thicknesses and depths are in nm, lateral positions and dimensions in
// μm, doping concentrations in cm⁻³, work functions in eV and contact
// resistances in Ω·mm.
//
// [stack]: https://pkg.go.dev/github.com/matzehuels/epistack/pkg/stack
// [geometry]: https://pkg.go.dev/github.com/matzehuels/epistack/pkg/geometry
// [device]: https://pkg.go.dev/github.com/matzehuels/epistack/pkg/device
// [io]: https://pkg.go.dev/github.com/matzehuels/epistack/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/epistack/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/epistack/pkg/errors
package pkg
