package stack

import (
	"math"
	"slices"

	"github.com/matzehuels/epistack/pkg/errors"
)

// Position is the lateral extent of a contact along the device, in μm.
type Position struct {
	Start float64
	End   float64
}

// Width returns End - Start.
func (p Position) Width() float64 { return p.End - p.Start }

// Contact is an electrical contact on the device surface. The zero value is
// not usable; create contacts with [NewContact].
type Contact struct {
	name         string
	typ          ContactType
	material     string
	position     Position
	workFunction *float64 // eV, schottky
	resistance   *float64 // Ω·mm, ohmic
}

// ContactOption configures optional contact fields in [NewContact].
type ContactOption func(*Contact)

// WithWorkFunction records the metal work function in eV.
func WithWorkFunction(eV float64) ContactOption {
	return func(c *Contact) {
		v := eV
		c.workFunction = &v
	}
}

// WithContactResistance records the specific contact resistance in Ω·mm.
func WithContactResistance(ohmMM float64) ContactOption {
	return func(c *Contact) {
		v := ohmMM
		c.resistance = &v
	}
}

// NewContact creates a validated contact.
//
// It returns an error with code [errors.ErrCodeValidation] when
// pos.Start >= pos.End, the type is not ohmic or schottky, or the name or
// material is unusable in a TCAD script. Placement against other contacts
// or the device length is not checked.
func NewContact(name string, typ ContactType, material string, pos Position, opts ...ContactOption) (Contact, error) {
	c := Contact{
		name:     name,
		typ:      typ,
		material: material,
		position: pos,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if err := errors.ValidateIdentifier(c.name); err != nil {
		return Contact{}, errors.Wrap(errors.ErrCodeValidation, err, "invalid contact name")
	}
	if err := errors.ValidateMaterial(c.material); err != nil {
		return Contact{}, errors.Wrap(errors.ErrCodeValidation, err, "contact %s: invalid material", c.name)
	}
	if !c.typ.Valid() {
		return Contact{}, errors.New(errors.ErrCodeValidation, "contact %s: invalid contact type %d", c.name, int(c.typ))
	}
	if !(pos.Start < pos.End) || math.IsInf(pos.Start, 0) || math.IsInf(pos.End, 0) {
		return Contact{}, errors.New(errors.ErrCodeValidation, "contact %s: position start %g must be below end %g", c.name, pos.Start, pos.End)
	}
	return c, nil
}

// MustContact is like [NewContact] but panics on error.
func MustContact(name string, typ ContactType, material string, pos Position, opts ...ContactOption) Contact {
	c, err := NewContact(name, typ, material, pos, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the contact identifier.
func (c Contact) Name() string { return c.name }

// Type returns ohmic or schottky.
func (c Contact) Type() ContactType { return c.typ }

// Material returns the metallization, e.g. "Ti/Al/Ni/Au".
func (c Contact) Material() string { return c.material }

// Position returns the lateral extent in μm.
func (c Contact) Position() Position { return c.position }

// WorkFunction returns the work function in eV and whether it is set.
func (c Contact) WorkFunction() (float64, bool) {
	if c.workFunction == nil {
		return 0, false
	}
	return *c.workFunction, true
}

// ContactResistance returns the contact resistance in Ω·mm and whether it is set.
func (c Contact) ContactResistance() (float64, bool) {
	if c.resistance == nil {
		return 0, false
	}
	return *c.resistance, true
}

// Equal reports whether two contacts have identical fields.
func (c Contact) Equal(o Contact) bool {
	return c.name == o.name &&
		c.typ == o.typ &&
		c.material == o.material &&
		c.position == o.position &&
		optionalEqual(c.workFunction, o.workFunction) &&
		optionalEqual(c.resistance, o.resistance)
}

func optionalEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ContactSet is an ordered list of contacts. The zero value is an empty set
// ready for use.
type ContactSet struct {
	contacts []Contact
}

// NewContactSet returns a set holding contacts in the given order.
func NewContactSet(contacts ...Contact) *ContactSet {
	return &ContactSet{contacts: slices.Clone(contacts)}
}

// Add appends a contact.
func (s *ContactSet) Add(c Contact) {
	s.contacts = append(s.contacts, c)
}

// Len returns the number of contacts.
func (s *ContactSet) Len() int { return len(s.contacts) }

// Contacts returns a copy of the contacts in insertion order.
func (s *ContactSet) Contacts() []Contact {
	return slices.Clone(s.contacts)
}

// Find returns the first contact named name.
func (s *ContactSet) Find(name string) (Contact, bool) {
	i := slices.IndexFunc(s.contacts, func(c Contact) bool { return c.name == name })
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}
