package device

import (
	"math"

	"github.com/matzehuels/epistack/pkg/errors"
)

// Dimensions holds the lateral device parameters, all in μm.
type Dimensions struct {
	GateLength         float64
	GateWidth          float64
	SourceDrainSpacing float64
	FieldPlateLength   float64
	DeviceLength       float64
}

// DefaultDimensions returns a 0.25 μm gate, 100 μm wide device with 4 μm
// source-drain spacing on a 10 μm die.
func DefaultDimensions() Dimensions {
	return Dimensions{
		GateLength:         0.25,
		GateWidth:          100,
		SourceDrainSpacing: 4.0,
		FieldPlateLength:   0.5,
		DeviceLength:       10.0,
	}
}

// Validate checks that every dimension is a positive finite number. It does
// not check that contacts fit on the die.
func (d Dimensions) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"gate_length", d.GateLength},
		{"gate_width", d.GateWidth},
		{"source_drain_spacing", d.SourceDrainSpacing},
		{"field_plate_length", d.FieldPlateLength},
		{"device_length", d.DeviceLength},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 1) {
			return errors.New(errors.ErrCodeValidation, "%s must be positive, got %g", f.name, f.value)
		}
	}
	return nil
}
