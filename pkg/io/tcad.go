package io

import (
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/stack"
)

// scriptWriter remembers the first write error and turns later writes into
// no-ops, so the emitters below can print freely and check once.
type scriptWriter struct {
	w   io.Writer
	err error
}

func (sw *scriptWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

// WriteTCAD writes s as a Sentaurus Structure Editor script to w.
// The first error returned by w is returned as-is.
func WriteTCAD(w io.Writer, s *device.Structure) error {
	sw := &scriptWriter{w: w}

	sw.printf("# Sentaurus Structure Editor Script\n")
	sw.printf("# InGaN/GaN HEMT Structure on %s\n\n", s.Substrate)

	writeMaterials(sw, s)
	writeRegions(sw, s)
	writeDoping(sw, s)
	writeContacts(sw, s)

	return sw.err
}

func writeMaterials(sw *scriptWriter, s *device.Structure) {
	sw.printf("# Material definitions\n")
	for _, m := range s.Layers.Materials() {
		sw.printf("(define %s (material %q))\n", m, m)
	}
	sw.printf("\n")
}

func writeRegions(sw *scriptWriter, s *device.Structure) {
	sw.printf("# Create regions\n")
	length := fmtCoord(s.Dimensions.DeviceLength)
	width := fmtCoord(s.Dimensions.GateWidth)
	for i, r := range s.Geometry().Regions() {
		sw.printf("(define region_%d (cuboid (position 0 0 %s) (position %s %s %s)))\n",
			i, fmtCoord(nmToMicron(r.Top)), length, width, fmtCoord(nmToMicron(r.Bottom)))
		sw.printf("(define %s (region %s \"region_%d\"))\n\n", r.Layer.Name(), r.Layer.Material(), i)
	}
}

func writeDoping(sw *scriptWriter, s *device.Structure) {
	sw.printf("# Doping profiles\n")
	for i, l := range s.Layers.Layers() {
		if !l.IsDoped() {
			continue
		}
		sw.printf("(define doping_%d (constant %q %q %.2e))\n",
			i, l.Name(), dopantSpecies(l.Doping()), l.DopingConcentration())
	}
}

func writeContacts(sw *scriptWriter, s *device.Structure) {
	sw.printf("\n# Contact definitions\n")
	for _, c := range s.Contacts.Contacts() {
		sw.printf("(define %s (contact %q %q))\n", c.Name(), c.Material(), c.Type())
	}
}

// dopantSpecies maps a doping type to the TCAD species keyword. Layers with
// only a background concentration and no declared type count as acceptor.
func dopantSpecies(d stack.DopingType) string {
	switch d {
	case stack.DopingN:
		return "donor"
	case stack.DopingP, stack.Undoped:
		return "acceptor"
	default:
		return "acceptor"
	}
}

func nmToMicron(nm float64) float64 { return nm / 1000 }

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
