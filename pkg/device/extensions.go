package device

import "github.com/matzehuels/epistack/pkg/stack"

// FieldPlate is a metal plate over the gate-drain access region.
type FieldPlate struct {
	Name     string
	Material string
	Position stack.Position // μm
	Height   float64        // μm above the surface
}

// Passivation is a dielectric film over the device surface.
type Passivation struct {
	Material  string
	Thickness float64 // nm
}

// Extensions holds optional add-on records. They are plain data with no
// invariants of their own and do not take part in geometry.
type Extensions struct {
	FieldPlates []FieldPlate
	Passivation []Passivation
}
