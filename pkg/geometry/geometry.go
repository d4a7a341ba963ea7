// Package geometry derives vertical coordinates from a layer stack.
//
// All coordinates are depths in nm measured downward from the top surface:
// 0 is the top of the uppermost layer. The substrate is never part of the
// walk; it is treated as a semi-infinite base below the epitaxial layers.
package geometry

import (
	"slices"

	"github.com/matzehuels/epistack/pkg/stack"
)

// ChargeSheetSetback is the distance in nm between the barrier/channel
// interface and the centroid of the 2DEG charge sheet below it.
const ChargeSheetSetback = 1.5

// Region is one non-substrate layer placed at its depth.
type Region struct {
	Layer  stack.Layer
	Top    float64 // nm from surface
	Bottom float64 // nm from surface
}

// Calculator computes derived geometry for a stack. It reads the stack on
// every call, so results reflect later Append or InsertAfter calls.
type Calculator struct {
	stack *stack.LayerStack
}

// New returns a Calculator over s.
func New(s *stack.LayerStack) *Calculator {
	return &Calculator{stack: s}
}

// Regions walks the stack from the top surface down, skipping the
// substrate, and returns each layer with its top and bottom depth.
func (c *Calculator) Regions() []Region {
	var (
		out []Region
		z   float64
	)
	for _, l := range slices.Backward(c.stack.Layers()) {
		if l.IsSubstrate() {
			continue
		}
		out = append(out, Region{Layer: l, Top: z, Bottom: z + l.Thickness()})
		z += l.Thickness()
	}
	return out
}

// Boundaries returns the depths of all layer interfaces, top surface first:
// [0, t1, t1+t2, ...]. The result has one more entry than there are
// non-substrate layers and is non-decreasing.
func (c *Calculator) Boundaries() []float64 {
	regions := c.Regions()
	out := make([]float64, 0, len(regions)+1)
	out = append(out, 0)
	for _, r := range regions {
		out = append(out, r.Bottom)
	}
	return out
}

// TwoDEGOffset returns the approximate depth of the 2DEG below the surface.
//
// The walk runs top-down. Cap layers add their thickness and the walk goes
// on; the first barrier adds its thickness plus [ChargeSheetSetback] and
// ends the walk. Every other layer type is skipped without contributing, so
// a passivation layer above the cap does not shift the result. If there is
// no barrier the accumulated cap thickness is returned; the ok result of
// [Calculator.ChargeSheetDepth] tells that case apart.
func (c *Calculator) TwoDEGOffset() float64 {
	var z float64
	for _, l := range slices.Backward(c.stack.Layers()) {
		switch l.Type() {
		case stack.LayerCap:
			z += l.Thickness()
		case stack.LayerBarrier:
			return z + l.Thickness() + ChargeSheetSetback
		case stack.LayerSubstrate, stack.LayerNucleation, stack.LayerBuffer,
			stack.LayerChannel, stack.LayerSpacer, stack.LayerPassivation, stack.LayerContact:
		}
	}
	return z
}

// ChargeSheetDepth returns the depth of the 2DEG measured from the top
// surface, counting every layer above the first barrier. Unlike
// [Calculator.TwoDEGOffset] it includes passivation and other layers above
// the cap. The index is that of the barrier in [Calculator.Regions]; ok is
// false if the stack has no barrier.
func (c *Calculator) ChargeSheetDepth() (depth float64, index int, ok bool) {
	for i, r := range c.Regions() {
		if r.Layer.Type() == stack.LayerBarrier {
			return r.Bottom + ChargeSheetSetback, i, true
		}
	}
	return 0, -1, false
}
