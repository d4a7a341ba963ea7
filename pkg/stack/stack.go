package stack

import (
	"slices"

	"github.com/matzehuels/epistack/pkg/errors"
)

// LayerStack is an ordered sequence of layers in growth order: index 0 is
// the bottom of the structure (the substrate, if present) and the last
// element is the top surface.
//
// The zero value is an empty stack ready for use. LayerStack is not safe
// for concurrent use without external synchronization.
type LayerStack struct {
	layers []Layer
}

// NewLayerStack returns a stack holding layers in the given growth order.
func NewLayerStack(layers ...Layer) *LayerStack {
	return &LayerStack{layers: slices.Clone(layers)}
}

// Append adds l on top of the stack.
func (s *LayerStack) Append(l Layer) {
	s.layers = append(s.layers, l)
}

// InsertAfter places l directly above the first layer whose type is
// anchor, leaving the relative order of every other layer intact.
// It returns an error with code [errors.ErrCodeLookup] if the stack has no
// layer of that type.
func (s *LayerStack) InsertAfter(l Layer, anchor LayerType) error {
	i := slices.IndexFunc(s.layers, func(x Layer) bool { return x.typ == anchor })
	if i < 0 {
		return errors.New(errors.ErrCodeLookup, "no %s layer to insert %s after", anchor, l.name)
	}
	s.layers = slices.Insert(s.layers, i+1, l)
	return nil
}

// Len returns the number of layers, substrate included.
func (s *LayerStack) Len() int { return len(s.layers) }

// At returns the layer at growth index i. It panics if i is out of range.
func (s *LayerStack) At(i int) Layer { return s.layers[i] }

// Layers returns a copy of the layers in growth order.
func (s *LayerStack) Layers() []Layer {
	return slices.Clone(s.layers)
}

// Substrate returns the first substrate layer, if any.
func (s *LayerStack) Substrate() (Layer, bool) {
	for _, l := range s.layers {
		if l.IsSubstrate() {
			return l, true
		}
	}
	return Layer{}, false
}

// EpiLayers returns the non-substrate layers in growth order.
func (s *LayerStack) EpiLayers() []Layer {
	out := make([]Layer, 0, len(s.layers))
	for _, l := range s.layers {
		if !l.IsSubstrate() {
			out = append(out, l)
		}
	}
	return out
}

// TotalThickness returns the summed thickness of every layer in nm,
// substrate included.
func (s *LayerStack) TotalThickness() float64 {
	var total float64
	for _, l := range s.layers {
		total += l.thickness
	}
	return total
}

// EpiThickness returns the summed thickness in nm of all layers except the
// substrate.
func (s *LayerStack) EpiThickness() float64 {
	var total float64
	for _, l := range s.layers {
		if !l.IsSubstrate() {
			total += l.thickness
		}
	}
	return total
}

// Materials returns the distinct material names in the stack, sorted.
func (s *LayerStack) Materials() []string {
	seen := make(map[string]bool, len(s.layers))
	var out []string
	for _, l := range s.layers {
		if !seen[l.material] {
			seen[l.material] = true
			out = append(out, l.material)
		}
	}
	slices.Sort(out)
	return out
}

// Validate checks the substrate placement rule: at most one substrate layer,
// and if present it is the bottom layer. Append does not enforce this, so
// stacks assembled from untrusted input should be validated before use.
func (s *LayerStack) Validate() error {
	for i, l := range s.layers {
		if l.IsSubstrate() && i != 0 {
			return errors.New(errors.ErrCodeValidation, "substrate layer %s must be the bottom layer, found at index %d", l.name, i)
		}
	}
	return nil
}
