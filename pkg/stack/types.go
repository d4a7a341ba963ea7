package stack

import (
	"fmt"
	"strings"
)

// LayerType classifies a layer by its role in the heterostructure.
// The zero value is invalid; every layer carries one of the named types.
type LayerType int

const (
	LayerSubstrate LayerType = iota + 1
	LayerNucleation
	LayerBuffer
	LayerChannel
	LayerSpacer
	LayerBarrier
	LayerCap
	LayerPassivation
	LayerContact
)

// LayerTypes lists every valid layer type in growth order.
var LayerTypes = []LayerType{
	LayerSubstrate,
	LayerNucleation,
	LayerBuffer,
	LayerChannel,
	LayerSpacer,
	LayerBarrier,
	LayerCap,
	LayerPassivation,
	LayerContact,
}

// String returns the lowercase name used in documents and config files.
func (t LayerType) String() string {
	switch t {
	case LayerSubstrate:
		return "substrate"
	case LayerNucleation:
		return "nucleation"
	case LayerBuffer:
		return "buffer"
	case LayerChannel:
		return "channel"
	case LayerSpacer:
		return "spacer"
	case LayerBarrier:
		return "barrier"
	case LayerCap:
		return "cap"
	case LayerPassivation:
		return "passivation"
	case LayerContact:
		return "contact"
	default:
		return fmt.Sprintf("LayerType(%d)", int(t))
	}
}

// Valid reports whether t is one of the named layer types.
func (t LayerType) Valid() bool {
	return t >= LayerSubstrate && t <= LayerContact
}

// ParseLayerType converts a name such as "barrier" into a LayerType.
// Matching is case-insensitive.
func ParseLayerType(s string) (LayerType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range LayerTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown layer type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t LayerType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid layer type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *LayerType) UnmarshalText(b []byte) error {
	v, err := ParseLayerType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// DopingType is the conductivity type of intentional doping.
// The zero value, [Undoped], means no doping type is declared; a layer may
// still carry a background concentration in that case.
type DopingType int

const (
	Undoped DopingType = iota
	DopingN
	DopingP
)

// String returns "n", "p", or "" for [Undoped].
func (d DopingType) String() string {
	switch d {
	case Undoped:
		return ""
	case DopingN:
		return "n"
	case DopingP:
		return "p"
	default:
		return fmt.Sprintf("DopingType(%d)", int(d))
	}
}

// Valid reports whether d is one of the named doping types.
func (d DopingType) Valid() bool {
	return d >= Undoped && d <= DopingP
}

// ParseDopingType converts "n", "p" or "" into a DopingType.
func ParseDopingType(s string) (DopingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Undoped, nil
	case "n":
		return DopingN, nil
	case "p":
		return DopingP, nil
	default:
		return 0, fmt.Errorf("unknown doping type %q", s)
	}
}

// ContactType distinguishes non-rectifying from rectifying contacts.
// The zero value is invalid.
type ContactType int

const (
	Ohmic ContactType = iota + 1
	Schottky
)

// String returns "ohmic" or "schottky".
func (c ContactType) String() string {
	switch c {
	case Ohmic:
		return "ohmic"
	case Schottky:
		return "schottky"
	default:
		return fmt.Sprintf("ContactType(%d)", int(c))
	}
}

// Valid reports whether c is one of the named contact types.
func (c ContactType) Valid() bool {
	return c == Ohmic || c == Schottky
}

// ParseContactType converts "ohmic" or "schottky" into a ContactType.
func ParseContactType(s string) (ContactType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ohmic":
		return Ohmic, nil
	case "schottky":
		return Schottky, nil
	default:
		return 0, fmt.Errorf("unknown contact type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ContactType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid contact type %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContactType) UnmarshalText(b []byte) error {
	v, err := ParseContactType(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
