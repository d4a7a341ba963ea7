package device

import (
	"github.com/matzehuels/epistack/pkg/errors"
	"github.com/matzehuels/epistack/pkg/geometry"
	"github.com/matzehuels/epistack/pkg/stack"
)

// Structure is a complete transistor description: the substrate choice,
// lateral dimensions, the layer stack, the contacts and optional extension
// records. Structure is not safe for concurrent mutation.
type Structure struct {
	Substrate  Substrate
	Dimensions Dimensions
	Layers     *stack.LayerStack
	Contacts   *stack.ContactSet

	// Extensions is nil until a field plate or passivation record is added.
	Extensions *Extensions
}

// New returns a structure with an empty layer stack and no contacts.
func New(sub Substrate, dims Dimensions) *Structure {
	return &Structure{
		Substrate:  sub,
		Dimensions: dims,
		Layers:     stack.NewLayerStack(),
		Contacts:   stack.NewContactSet(),
	}
}

// NewDefault builds the reference InGaN/GaN HEMT on sub: substrate,
// nucleation (except on GaN), two buffers, channel, spacer, InAlN barrier and
// GaN cap, plus source, drain and gate contacts placed from dims.
func NewDefault(sub Substrate, dims Dimensions) (*Structure, error) {
	layers, err := DefaultLayers(sub)
	if err != nil {
		return nil, err
	}
	contacts, err := DefaultContacts(dims)
	if err != nil {
		return nil, err
	}
	return &Structure{
		Substrate:  sub,
		Dimensions: dims,
		Layers:     stack.NewLayerStack(layers...),
		Contacts:   stack.NewContactSet(contacts...),
	}, nil
}

// DefaultLayers returns the reference layer sequence in growth order.
func DefaultLayers(sub Substrate) ([]stack.Layer, error) {
	substrate, err := stack.NewLayer("Substrate", string(sub), sub.Thickness(), stack.LayerSubstrate)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "substrate %q", sub)
	}

	layers := []stack.Layer{substrate}
	if sub.NeedsNucleation() {
		layers = append(layers, stack.MustLayer("Nucleation", "AlN", 100, stack.LayerNucleation))
	}
	return append(layers,
		stack.MustLayer("Buffer1", "AlGaN", 500, stack.LayerBuffer,
			stack.WithComposition(stack.Composition{"Al": 0.1, "Ga": 0.9})),
		stack.MustLayer("Buffer2", "GaN", 1500, stack.LayerBuffer,
			stack.WithDoping(stack.DopingN, 1e16)),
		// unintentionally doped: background level without a declared type
		stack.MustLayer("Channel", "GaN", 300, stack.LayerChannel,
			stack.WithDoping(stack.Undoped, 1e16)),
		stack.MustLayer("Spacer", "AlN", 1, stack.LayerSpacer),
		stack.MustLayer("Barrier", "InAlN", 15, stack.LayerBarrier,
			stack.WithComposition(stack.Composition{"In": 0.17, "Al": 0.83}),
			stack.WithDoping(stack.DopingN, 5e18)),
		stack.MustLayer("Cap", "GaN", 2, stack.LayerCap,
			stack.WithDoping(stack.DopingN, 2e19)),
	), nil
}

const (
	ohmicMetal      = "Ti/Al/Ni/Au"
	gateMetal       = "Ni/Au"
	ohmicLength     = 1.0 // μm
	gateOffset      = 1.5 // μm from the source edge
	ohmicResistance = 0.2 // Ω·mm
	gateWorkFunc    = 5.1 // eV
)

// DefaultContacts places source, drain and gate from dims. The source spans
// (0, 1) μm, the drain starts at the source-drain spacing and is 1 μm long,
// and the gate starts 1.5 μm from the source edge and spans the gate
// length. Overlap and die bounds are not checked.
func DefaultContacts(dims Dimensions) ([]stack.Contact, error) {
	source, err := stack.NewContact("Source", stack.Ohmic, ohmicMetal,
		stack.Position{Start: 0, End: ohmicLength},
		stack.WithContactResistance(ohmicResistance))
	if err != nil {
		return nil, err
	}

	drainStart := dims.SourceDrainSpacing
	drain, err := stack.NewContact("Drain", stack.Ohmic, ohmicMetal,
		stack.Position{Start: drainStart, End: drainStart + ohmicLength},
		stack.WithContactResistance(ohmicResistance))
	if err != nil {
		return nil, err
	}

	gate, err := stack.NewContact("Gate", stack.Schottky, gateMetal,
		stack.Position{Start: gateOffset, End: gateOffset + dims.GateLength},
		stack.WithWorkFunction(gateWorkFunc))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, err, "gate length %g", dims.GateLength)
	}

	return []stack.Contact{source, drain, gate}, nil
}

// Geometry returns a calculator over the structure's layer stack.
func (s *Structure) Geometry() *geometry.Calculator {
	return geometry.New(s.Layers)
}

// BackBarrier configures [Structure.AddBackBarrier].
type BackBarrier struct {
	Thickness           float64 // nm
	DopingConcentration float64 // cm^-3, p-type
}

// DefaultBackBarrier is a 50 nm p-type layer at 5e18 cm^-3.
func DefaultBackBarrier() BackBarrier {
	return BackBarrier{Thickness: 50, DopingConcentration: 5e18}
}

// AddBackBarrier inserts a p-doped Al0.05Ga0.95N buffer layer directly
// after the channel in growth order, so it sits between the channel and the
// spacer. It fails with
// [errors.ErrCodeLookup] if the stack has no channel layer.
func (s *Structure) AddBackBarrier(bb BackBarrier) error {
	l, err := stack.NewLayer("BackBarrier", "AlGaN", bb.Thickness, stack.LayerBuffer,
		stack.WithComposition(stack.Composition{"Al": 0.05, "Ga": 0.95}),
		stack.WithDoping(stack.DopingP, bb.DopingConcentration),
	)
	if err != nil {
		return err
	}
	return s.Layers.InsertAfter(l, stack.LayerChannel)
}

// AddFieldPlate records a field plate in the extension record.
func (s *Structure) AddFieldPlate(fp FieldPlate) {
	s.ext().FieldPlates = append(s.ext().FieldPlates, fp)
}

// AddPassivation records a passivation film in the extension record.
func (s *Structure) AddPassivation(p Passivation) {
	s.ext().Passivation = append(s.ext().Passivation, p)
}

func (s *Structure) ext() *Extensions {
	if s.Extensions == nil {
		s.Extensions = &Extensions{}
	}
	return s.Extensions
}

// Validate checks the dimensions and the substrate placement rule of the
// layer stack.
func (s *Structure) Validate() error {
	if err := s.Dimensions.Validate(); err != nil {
		return err
	}
	return s.Layers.Validate()
}
