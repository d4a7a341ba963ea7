package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/errors"
	"github.com/matzehuels/epistack/pkg/stack"
)

type document struct {
	SubstrateType string      `json:"substrate_type"`
	Dimensions    dimensions  `json:"dimensions"`
	Layers        []layer     `json:"layers"`
	Contacts      []contact   `json:"contacts"`
	Extensions    *extensions `json:"extensions,omitempty"`
}

type dimensions struct {
	GateLength         float64 `json:"gate_length"`
	GateWidth          float64 `json:"gate_width"`
	SourceDrainSpacing float64 `json:"source_drain_spacing"`
	FieldPlateLength   float64 `json:"field_plate_length"`
	DeviceLength       float64 `json:"device_length"`
}

type layer struct {
	Name                string             `json:"name"`
	Material            string             `json:"material"`
	Thickness           float64            `json:"thickness"`
	Type                stack.LayerType    `json:"type"`
	DopingType          *string            `json:"doping_type"`
	DopingConcentration float64            `json:"doping_concentration"`
	Composition         map[string]float64 `json:"composition"`
}

type contact struct {
	Name              string            `json:"name"`
	Type              stack.ContactType `json:"type"`
	Material          string            `json:"material"`
	Position          [2]float64        `json:"position"`
	WorkFunction      *float64          `json:"work_function"`
	ContactResistance *float64          `json:"contact_resistance"`
}

type extensions struct {
	FieldPlates []fieldPlate  `json:"field_plates"`
	Passivation []passivation `json:"passivation_layers"`
}

type fieldPlate struct {
	Name     string     `json:"name"`
	Material string     `json:"material"`
	Position [2]float64 `json:"position"`
	Height   float64    `json:"height"`
}

type passivation struct {
	Material  string  `json:"material"`
	Thickness float64 `json:"thickness"`
}

// WriteJSON encodes s as an indented JSON interchange document and writes
// it to w. Errors from w are returned unchanged.
func WriteJSON(w io.Writer, s *device.Structure) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(s))
}

// ExportJSON writes s to a JSON file at path. The file is closed on every
// return path; a partially written file is left in place on error.
func ExportJSON(s *device.Structure, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteJSON(w, s) })
}

// ExportTCAD writes s to a TCAD script file at path. The file is closed on
// every return path; a partially written file is left in place on error.
func ExportTCAD(s *device.Structure, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteTCAD(w, s) })
}

func exportFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func toDocument(s *device.Structure) document {
	doc := document{
		SubstrateType: string(s.Substrate),
		Dimensions: dimensions{
			GateLength:         s.Dimensions.GateLength,
			GateWidth:          s.Dimensions.GateWidth,
			SourceDrainSpacing: s.Dimensions.SourceDrainSpacing,
			FieldPlateLength:   s.Dimensions.FieldPlateLength,
			DeviceLength:       s.Dimensions.DeviceLength,
		},
		Layers:   make([]layer, 0, s.Layers.Len()),
		Contacts: make([]contact, 0, s.Contacts.Len()),
	}

	for _, l := range s.Layers.Layers() {
		doc.Layers = append(doc.Layers, layer{
			Name:                l.Name(),
			Material:            l.Material(),
			Thickness:           l.Thickness(),
			Type:                l.Type(),
			DopingType:          encodeDoping(l.Doping()),
			DopingConcentration: l.DopingConcentration(),
			Composition:         l.Composition(),
		})
	}

	for _, c := range s.Contacts.Contacts() {
		pos := c.Position()
		out := contact{
			Name:     c.Name(),
			Type:     c.Type(),
			Material: c.Material(),
			Position: [2]float64{pos.Start, pos.End},
		}
		if wf, ok := c.WorkFunction(); ok {
			out.WorkFunction = &wf
		}
		if r, ok := c.ContactResistance(); ok {
			out.ContactResistance = &r
		}
		doc.Contacts = append(doc.Contacts, out)
	}

	if ext := s.Extensions; ext != nil {
		doc.Extensions = &extensions{
			FieldPlates: make([]fieldPlate, 0, len(ext.FieldPlates)),
			Passivation: make([]passivation, 0, len(ext.Passivation)),
		}
		for _, fp := range ext.FieldPlates {
			doc.Extensions.FieldPlates = append(doc.Extensions.FieldPlates, fieldPlate{
				Name:     fp.Name,
				Material: fp.Material,
				Position: [2]float64{fp.Position.Start, fp.Position.End},
				Height:   fp.Height,
			})
		}
		for _, p := range ext.Passivation {
			doc.Extensions.Passivation = append(doc.Extensions.Passivation, passivation(p))
		}
	}

	return doc
}

func encodeDoping(d stack.DopingType) *string {
	switch d {
	case stack.DopingN, stack.DopingP:
		s := d.String()
		return &s
	case stack.Undoped:
		return nil
	default:
		return nil
	}
}
