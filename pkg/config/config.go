// Package config loads structure descriptions from TOML files.
//
// A description names a substrate, overrides any of the lateral dimensions
// and optionally adds a back barrier, extra top layers, field plates and
// passivation films to the reference HEMT:
//
//	substrate = "GaN"
//
//	[dimensions]
//	gate_length = 0.15
//
//	[back_barrier]
//	thickness = 50
//
//	[[layers]]
//	name = "SiNCap"
//	material = "SiN"
//	thickness = 100
//	type = "passivation"
//
// Keys that are not recognized are rejected so typos do not pass silently.
package config

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/errors"
	"github.com/matzehuels/epistack/pkg/stack"
)

// Config is the decoded form of a structure description.
type Config struct {
	Substrate   string        `toml:"substrate"`
	Dimensions  Dimensions    `toml:"dimensions"`
	BackBarrier *BackBarrier  `toml:"back_barrier"`
	Layers      []Layer       `toml:"layers"`
	FieldPlates []FieldPlate  `toml:"field_plates"`
	Passivation []Passivation `toml:"passivation"`
}

// Dimensions mirrors [device.Dimensions]. Keys left out of the file keep
// their default values.
type Dimensions struct {
	GateLength         float64 `toml:"gate_length"`
	GateWidth          float64 `toml:"gate_width"`
	SourceDrainSpacing float64 `toml:"source_drain_spacing"`
	FieldPlateLength   float64 `toml:"field_plate_length"`
	DeviceLength       float64 `toml:"device_length"`
}

// BackBarrier enables the p-type back barrier. Keys left out take the
// values of [device.DefaultBackBarrier]; an explicit zero is kept.
type BackBarrier struct {
	Thickness           float64 `toml:"thickness"`
	DopingConcentration float64 `toml:"doping_concentration"`
}

// Layer is an extra layer appended on top of the reference stack.
type Layer struct {
	Name                string             `toml:"name"`
	Material            string             `toml:"material"`
	Thickness           float64            `toml:"thickness"`
	Type                stack.LayerType    `toml:"type"`
	DopingType          string             `toml:"doping_type"`
	DopingConcentration float64            `toml:"doping_concentration"`
	Composition         map[string]float64 `toml:"composition"`
}

type FieldPlate struct {
	Name     string     `toml:"name"`
	Material string     `toml:"material"`
	Position [2]float64 `toml:"position"`
	Height   float64    `toml:"height"`
}

type Passivation struct {
	Material  string  `toml:"material"`
	Thickness float64 `toml:"thickness"`
}

// Default returns the description of the reference HEMT on SiC.
func Default() Config {
	d := device.DefaultDimensions()
	return Config{
		Substrate: string(device.SubstrateSiC),
		Dimensions: Dimensions{
			GateLength:         d.GateLength,
			GateWidth:          d.GateWidth,
			SourceDrainSpacing: d.SourceDrainSpacing,
			FieldPlateLength:   d.FieldPlateLength,
			DeviceLength:       d.DeviceLength,
		},
	}
}

// Load reads and decodes the description at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Decode reads a description from r on top of [Default].
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if bb := cfg.BackBarrier; bb != nil {
		def := device.DefaultBackBarrier()
		if !md.IsDefined("back_barrier", "thickness") {
			bb.Thickness = def.Thickness
		}
		if !md.IsDefined("back_barrier", "doping_concentration") {
			bb.DopingConcentration = def.DopingConcentration
		}
	}
	return cfg, nil
}

// Build assembles the structure the description names.
func (c Config) Build() (*device.Structure, error) {
	sub, err := device.ParseSubstrate(c.Substrate)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "substrate")
	}

	dims := device.Dimensions(c.Dimensions)
	if err := dims.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "dimensions")
	}

	s, err := device.NewDefault(sub, dims)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "build structure")
	}

	if bb := c.BackBarrier; bb != nil {
		if err := s.AddBackBarrier(device.BackBarrier(*bb)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "back_barrier")
		}
	}

	for i, l := range c.Layers {
		built, err := l.build()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "layers[%d]", i)
		}
		s.Layers.Append(built)
	}
	if err := s.Layers.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "layers")
	}

	for _, fp := range c.FieldPlates {
		s.AddFieldPlate(device.FieldPlate{
			Name:     fp.Name,
			Material: fp.Material,
			Position: stack.Position{Start: fp.Position[0], End: fp.Position[1]},
			Height:   fp.Height,
		})
	}
	for _, p := range c.Passivation {
		s.AddPassivation(device.Passivation(p))
	}

	return s, nil
}

func (l Layer) build() (stack.Layer, error) {
	doping, err := stack.ParseDopingType(l.DopingType)
	if err != nil {
		return stack.Layer{}, err
	}
	return stack.NewLayer(l.Name, l.Material, l.Thickness, l.Type,
		stack.WithDoping(doping, l.DopingConcentration),
		stack.WithComposition(l.Composition),
	)
}
