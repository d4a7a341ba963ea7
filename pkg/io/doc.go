// Package io serializes device structures into the two external formats:
// a Sentaurus Structure Editor (TCAD) script and a JSON interchange document.
//
// # TCAD Script
//
// [WriteTCAD] emits four groups of Scheme-style declarations, in order:
//
//	# Material definitions
//	(define GaN (material "GaN"))
//
//	# Create regions
//	(define region_0 (cuboid (position 0 0 0) (position 10 100 0.002)))
//	(define Cap (region GaN "region_0"))
//
//	# Doping profiles
//	(define doping_8 (constant "Cap" "donor" 2.00e+19))
//
//	# Contact definitions
//	(define Gate (contact "Ni/Au" "schottky"))
//
// Materials are emitted once each, sorted by name; consumers must not rely
// on the order. Regions are cuboids spanning device_length × gate_width in
// plane and walk the non-substrate layers from the top surface down, with z
// in μm. Doping indices are growth-order indices into the full stack.
//
// # JSON Format
//
//	{
//	  "substrate_type": "SiC",
//	  "dimensions": {"gate_length": 0.25, "gate_width": 100, ...},
//	  "layers": [
//	    {"name": "Substrate", "material": "SiC", "thickness": 350000,
//	     "type": "substrate", "doping_type": null,
//	     "doping_concentration": 0, "composition": null},
//	    ...
//	  ],
//	  "contacts": [
//	    {"name": "Gate", "type": "schottky", "material": "Ni/Au",
//	     "position": [1.5, 1.75], "work_function": 5.1,
//	     "contact_resistance": null},
//	    ...
//	  ]
//	}
//
// Optional layer and contact fields are always present and encoded as null
// when absent. An "extensions" object with field plates and passivation is
// added only when the structure has one. Derived geometry (boundaries, 2DEG
// depth) is not written; consumers recompute it.
//
// # Round Trip
//
// [ReadJSON] and [ImportJSON] rebuild a [device.Structure] whose layers and
// contacts are field-for-field equal to the exported ones.
//
// # Errors
//
// Errors returned by the destination writer are passed through unchanged.
// The file helpers ([ExportTCAD], [ExportJSON]) always close the file, also
// on failure, and do not remove partially written output.
//
// [device.Structure]: github.com/matzehuels/epistack/pkg/device.Structure
package io
