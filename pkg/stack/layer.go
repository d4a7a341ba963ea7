package stack

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/epistack/pkg/errors"
)

// Composition maps an element symbol to its mole fraction in an alloy,
// e.g. {"In": 0.17, "Al": 0.83} for lattice-matched InAlN.
type Composition map[string]float64

// Elements returns the element symbols in lexical order.
func (c Composition) Elements() []string {
	return slices.Sorted(maps.Keys(c))
}

// String renders the composition as "Al:0.10 Ga:0.90".
func (c Composition) String() string {
	parts := make([]string, 0, len(c))
	for _, el := range c.Elements() {
		parts = append(parts, fmt.Sprintf("%s:%.2f", el, c[el]))
	}
	return strings.Join(parts, " ")
}

// Layer is a single epitaxial (or substrate) layer. The zero value is not
// usable; create layers with [NewLayer].
type Layer struct {
	name          string
	material      string
	thickness     float64 // nm
	typ           LayerType
	doping        DopingType
	concentration float64 // cm^-3
	composition   Composition
}

// LayerOption configures optional layer fields in [NewLayer].
type LayerOption func(*Layer)

// WithDoping sets the doping type and concentration (cm^-3). Use [Undoped]
// with a non-zero concentration to record unintentional background doping.
func WithDoping(t DopingType, concentration float64) LayerOption {
	return func(l *Layer) {
		l.doping = t
		l.concentration = concentration
	}
}

// WithComposition attaches alloy fractions. The map is copied; an empty map
// is treated as no composition.
func WithComposition(c Composition) LayerOption {
	return func(l *Layer) {
		if len(c) == 0 {
			l.composition = nil
			return
		}
		l.composition = maps.Clone(c)
	}
}

// NewLayer creates a validated layer. Thickness is in nm.
//
// It returns an error with code [errors.ErrCodeValidation] when the thickness
// is not positive, the doping concentration is negative, the type is not one
// of the named layer types, or the name or material cannot be used as a TCAD
// identifier. A doping concentration of exactly zero is valid and means
// undoped.
func NewLayer(name, material string, thickness float64, typ LayerType, opts ...LayerOption) (Layer, error) {
	l := Layer{
		name:      name,
		material:  material,
		thickness: thickness,
		typ:       typ,
	}
	for _, opt := range opts {
		opt(&l)
	}
	if err := l.validate(); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// MustLayer is like [NewLayer] but panics on error. It is intended for
// fixed, known-good definitions such as the default structure.
func MustLayer(name, material string, thickness float64, typ LayerType, opts ...LayerOption) Layer {
	l, err := NewLayer(name, material, thickness, typ, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Layer) validate() error {
	if err := errors.ValidateIdentifier(l.name); err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "invalid layer name")
	}
	if err := errors.ValidateIdentifier(l.material); err != nil {
		return errors.Wrap(errors.ErrCodeValidation, err, "layer %s: invalid material", l.name)
	}
	if !(l.thickness > 0) || math.IsInf(l.thickness, 1) {
		return errors.New(errors.ErrCodeValidation, "layer %s: thickness must be positive, got %g", l.name, l.thickness)
	}
	if !l.typ.Valid() {
		return errors.New(errors.ErrCodeValidation, "layer %s: invalid layer type %d", l.name, int(l.typ))
	}
	if !l.doping.Valid() {
		return errors.New(errors.ErrCodeValidation, "layer %s: invalid doping type %d", l.name, int(l.doping))
	}
	if !(l.concentration >= 0) || math.IsInf(l.concentration, 1) {
		return errors.New(errors.ErrCodeValidation, "layer %s: doping concentration cannot be negative, got %g", l.name, l.concentration)
	}
	for el, frac := range l.composition {
		if el == "" {
			return errors.New(errors.ErrCodeValidation, "layer %s: composition has an empty element symbol", l.name)
		}
		if !(frac >= 0 && frac <= 1) {
			return errors.New(errors.ErrCodeValidation, "layer %s: fraction of %s must be within [0, 1], got %g", l.name, el, frac)
		}
	}
	return nil
}

// Name returns the layer identifier.
func (l Layer) Name() string { return l.name }

// Material returns the material identifier, e.g. "GaN".
func (l Layer) Material() string { return l.material }

// Thickness returns the layer thickness in nm.
func (l Layer) Thickness() float64 { return l.thickness }

// Type returns the layer's role in the stack.
func (l Layer) Type() LayerType { return l.typ }

// Doping returns the declared doping type.
func (l Layer) Doping() DopingType { return l.doping }

// DopingConcentration returns the doping concentration in cm^-3.
func (l Layer) DopingConcentration() float64 { return l.concentration }

// IsDoped reports whether the layer carries a non-zero concentration.
func (l Layer) IsDoped() bool { return l.concentration > 0 }

// IsSubstrate reports whether the layer is the substrate.
func (l Layer) IsSubstrate() bool { return l.typ == LayerSubstrate }

// Composition returns a copy of the alloy fractions, or nil.
func (l Layer) Composition() Composition {
	if l.composition == nil {
		return nil
	}
	return maps.Clone(l.composition)
}

// WithThickness returns a copy of l with a new thickness. The receiver is
// left untouched.
func (l Layer) WithThickness(thickness float64) (Layer, error) {
	l.composition = l.Composition()
	l.thickness = thickness
	if err := l.validate(); err != nil {
		return Layer{}, err
	}
	return l, nil
}

// Equal reports whether two layers have identical fields.
func (l Layer) Equal(o Layer) bool {
	return l.name == o.name &&
		l.material == o.material &&
		l.thickness == o.thickness &&
		l.typ == o.typ &&
		l.doping == o.doping &&
		l.concentration == o.concentration &&
		maps.Equal(l.composition, o.composition)
}
