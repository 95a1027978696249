// Package party holds the contact ("party") model: the person/organization
// discriminator, display name composition, the rules that keep person-only
// attributes off organizations, and the field states derived from them.
package party

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-partytype/internal/config"
)

// Type discriminates persons from organizations.
type Type string

const (
	TypeOrganization Type = "organization"
	TypePerson       Type = "person"
)

// Valid reports whether t is one of the known contact types.
func (t Type) Valid() bool {
	return t == TypeOrganization || t == TypePerson
}

// NameOrder is the rule used to assemble first and last name of a person.
type NameOrder string

const (
	NameOrderLastCommaFirst NameOrder = "last_comma_first"
	NameOrderFirstLast      NameOrder = "first_last"
	NameOrderLastFirst      NameOrder = "last_first"
)

// NameOrders lists the orders in the sequence they are offered for selection.
var NameOrders = []NameOrder{NameOrderLastCommaFirst, NameOrderFirstLast, NameOrderLastFirst}

func (o NameOrder) Valid() bool {
	switch o {
	case NameOrderLastCommaFirst, NameOrderFirstLast, NameOrderLastFirst:
		return true
	}
	return false
}

// Gender of a person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseType converts user input into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: type %q", ErrInvalidValue, s)
	}
	return t, nil
}

// ParseNameOrder converts user input into a NameOrder.
func ParseNameOrder(s string) (NameOrder, error) {
	o := NameOrder(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("%w: name order %q", ErrInvalidValue, s)
	}
	return o, nil
}

// ParseGender converts user input into a Gender.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: gender %q", ErrInvalidValue, s)
	}
	return g, nil
}

// DefaultOptions is the creation context consulted by Defaults.
type DefaultOptions struct {
	// Type overrides the default contact type when set.
	Type Type
	// NameOrder overrides config.DefaultNameOrder when set.
	NameOrder NameOrder
}

// Defaults returns a new contact filled with the per-field default values.
func Defaults(opts DefaultOptions) Contact {
	c := Contact{
		Type:      Type(config.DefaultType),
		NameOrder: NameOrder(config.DefaultNameOrder),
		Gender:    Gender(config.DefaultGender),
		Active:    config.DefaultActive,
	}
	if opts.Type != "" {
		c.Type = opts.Type
	}
	if opts.NameOrder != "" {
		c.NameOrder = opts.NameOrder
	}
	return c
}

// LabelKey returns the translation key of the type label.
func (t Type) LabelKey() string {
	if t == TypePerson {
		return config.TKeyTypePerson
	}
	return config.TKeyTypeOrganization
}

// LabelKey returns the translation key of the order label.
func (o NameOrder) LabelKey() string {
	switch o {
	case NameOrderLastCommaFirst:
		return config.TKeyOrderLastCommaFirst
	case NameOrderFirstLast:
		return config.TKeyOrderFirstLast
	case NameOrderLastFirst:
		return config.TKeyOrderLastFirst
	}
	return string(o)
}

// LabelKey returns the translation key of the gender label.
func (g Gender) LabelKey() string {
	if g == GenderFemale {
		return config.TKeyGenderFemale
	}
	return config.TKeyGenderMale
}
