package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-partytype/internal/party"
)

func TestEdit_PersonNameFollowsParts(t *testing.T) {
	e := party.NewEdit(party.Defaults(party.DefaultOptions{Type: party.TypePerson}))

	e.SetFirstName("John")
	assert.Equal(t, "John", e.Contact().Name)

	e.SetLastName("Doe")
	assert.Equal(t, "Doe John", e.Contact().Name, "Default order is last_first")

	e.SetNameOrder(party.NameOrderLastCommaFirst)
	assert.Equal(t, "Doe, John", e.Contact().Name)

	e.SetNameOrder(party.NameOrderFirstLast)
	c := e.Contact()
	assert.Equal(t, "John Doe", c.Name)
	assert.Equal(t, c.Name, c.DisplayName())

	// A direct display name edit resolves back to the composed name.
	e.SetDisplayName("Someone Else")
	assert.Equal(t, "John Doe", e.Contact().Name)
}

func TestEdit_Organization(t *testing.T) {
	e := party.NewEdit(party.Defaults(party.DefaultOptions{}))

	e.SetDisplayName("Acme Corp")
	assert.Equal(t, "Acme Corp", e.Contact().Name)
	assert.Equal(t, party.Some("Acme Corp"), e.Patch().Name)

	e.SetType(party.TypePerson)
	assert.Empty(t, e.Contact().Name, "A type switch invalidates the name")
}

func TestEdit_StatesFollowEdits(t *testing.T) {
	e := party.NewEdit(party.Defaults(party.DefaultOptions{}))
	assert.True(t, e.ReadOnly(party.FieldFirstName))
	assert.False(t, e.ReadOnly(party.FieldDisplayName))

	e.SetType(party.TypePerson)
	assert.False(t, e.ReadOnly(party.FieldFirstName))
	assert.True(t, e.ReadOnly(party.FieldDisplayName))
	assert.True(t, e.Required(party.FieldFirstName))

	e.SetLastName("Doe")
	assert.False(t, e.Required(party.FieldFirstName))

	e.SetActive(false)
	assert.True(t, e.ReadOnly(party.FieldType))
	assert.True(t, e.ReadOnly(party.FieldLastName))
}

func TestContact_SetDisplayName(t *testing.T) {
	org := party.Contact{Type: party.TypeOrganization, Name: "Old", Active: true}
	org.SetDisplayName("New")
	assert.Equal(t, "New", org.Name)
	assert.Equal(t, "New", org.DisplayName())

	p := party.Contact{
		Type:      party.TypePerson,
		Name:      "Doe John",
		FirstName: "John",
		LastName:  "Doe",
		NameOrder: party.NameOrderLastFirst,
		Active:    true,
	}
	p.SetDisplayName("Whatever")
	assert.Equal(t, "Doe John", p.Name)
}

func TestDefaults(t *testing.T) {
	c := party.Defaults(party.DefaultOptions{})
	assert.Equal(t, party.TypeOrganization, c.Type)
	assert.Equal(t, party.NameOrderLastFirst, c.NameOrder)
	assert.Equal(t, party.GenderMale, c.Gender)
	assert.True(t, c.Active)

	c = party.Defaults(party.DefaultOptions{Type: party.TypePerson})
	assert.Equal(t, party.TypePerson, c.Type)

	c = party.Defaults(party.DefaultOptions{NameOrder: party.NameOrderFirstLast})
	assert.Equal(t, party.NameOrderFirstLast, c.NameOrder)
}

func TestParse(t *testing.T) {
	typ, err := party.ParseType(" Person ")
	assert.NoError(t, err)
	assert.Equal(t, party.TypePerson, typ)

	_, err = party.ParseType("company")
	assert.ErrorIs(t, err, party.ErrInvalidValue)

	order, err := party.ParseNameOrder("LAST_COMMA_FIRST")
	assert.NoError(t, err)
	assert.Equal(t, party.NameOrderLastCommaFirst, order)

	_, err = party.ParseNameOrder("first_middle_last")
	assert.ErrorIs(t, err, party.ErrInvalidValue)

	g, err := party.ParseGender("female")
	assert.NoError(t, err)
	assert.Equal(t, party.GenderFemale, g)

	_, err = party.ParseGender("x")
	assert.ErrorIs(t, err, party.ErrInvalidValue)
}
