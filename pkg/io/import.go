package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/epistack/pkg/device"
	"github.com/matzehuels/epistack/pkg/errors"
	"github.com/matzehuels/epistack/pkg/stack"
)

// ReadJSON decodes a JSON interchange document from r into a Structure.
//
// Every layer and contact is rebuilt through the validating constructors,
// so a document that violates a model invariant is rejected with
// [errors.ErrCodeInvalidFormat] naming the offending record. Any geometry
// fields a producer may have added are ignored. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*device.Structure, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode structure")
	}

	s := device.New(device.Substrate(doc.SubstrateType), device.Dimensions{
		GateLength:         doc.Dimensions.GateLength,
		GateWidth:          doc.Dimensions.GateWidth,
		SourceDrainSpacing: doc.Dimensions.SourceDrainSpacing,
		FieldPlateLength:   doc.Dimensions.FieldPlateLength,
		DeviceLength:       doc.Dimensions.DeviceLength,
	})

	for i, l := range doc.Layers {
		built, err := l.toLayer()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "layer %d (%s)", i, l.Name)
		}
		s.Layers.Append(built)
	}
	if err := s.Layers.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "layers")
	}

	for i, c := range doc.Contacts {
		built, err := c.toContact()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "contact %d (%s)", i, c.Name)
		}
		s.Contacts.Add(built)
	}

	sub, err := device.ParseSubstrate(doc.SubstrateType)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "substrate_type")
	}
	s.Substrate = sub
	if err := s.Dimensions.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "dimensions")
	}

	if ext := doc.Extensions; ext != nil {
		s.Extensions = &device.Extensions{}
		for _, fp := range ext.FieldPlates {
			s.AddFieldPlate(device.FieldPlate{
				Name:     fp.Name,
				Material: fp.Material,
				Position: stack.Position{Start: fp.Position[0], End: fp.Position[1]},
				Height:   fp.Height,
			})
		}
		for _, p := range ext.Passivation {
			s.AddPassivation(device.Passivation(p))
		}
	}

	return s, nil
}

// ImportJSON reads the JSON document at path. It returns the same errors as
// [ReadJSON], plus [errors.ErrCodeIO] if the file cannot be opened.
func ImportJSON(path string) (*device.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

func (l layer) toLayer() (stack.Layer, error) {
	doping := stack.Undoped
	if l.DopingType != nil {
		d, err := stack.ParseDopingType(*l.DopingType)
		if err != nil {
			return stack.Layer{}, err
		}
		doping = d
	}
	return stack.NewLayer(l.Name, l.Material, l.Thickness, l.Type,
		stack.WithDoping(doping, l.DopingConcentration),
		stack.WithComposition(l.Composition),
	)
}

func (c contact) toContact() (stack.Contact, error) {
	var opts []stack.ContactOption
	if c.WorkFunction != nil {
		opts = append(opts, stack.WithWorkFunction(*c.WorkFunction))
	}
	if c.ContactResistance != nil {
		opts = append(opts, stack.WithContactResistance(*c.ContactResistance))
	}
	return stack.NewContact(c.Name, c.Type, c.Material,
		stack.Position{Start: c.Position[0], End: c.Position[1]}, opts...)
}
