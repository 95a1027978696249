package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-partytype/internal/party"
)

func person(first, last string, order party.NameOrder) party.Patch {
	return party.Patch{
		Type:      party.Some(party.TypePerson),
		FirstName: party.String(first),
		LastName:  party.String(last),
		NameOrder: party.Some(order),
	}
}

func TestCompose_Person_Orders(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		order party.NameOrder
		want  string
	}{
		{"FirstLast", "John", "Doe", party.NameOrderFirstLast, "John Doe"},
		{"LastFirst", "John", "Doe", party.NameOrderLastFirst, "Doe John"},
		{"LastCommaFirst", "John", "Doe", party.NameOrderLastCommaFirst, "Doe, John"},
		{"FirstLast_NoFirst", "", "Doe", party.NameOrderFirstLast, "Doe"},
		{"FirstLast_NoLast", "John", "", party.NameOrderFirstLast, "John"},
		{"LastCommaFirst_NoFirst", "", "Doe", party.NameOrderLastCommaFirst, "Doe"},
		{"LastCommaFirst_NoLast", "John", "", party.NameOrderLastCommaFirst, "John"},
		{"LastFirst_Empty", "", "", party.NameOrderLastFirst, ""},
		{"FirstLast_Empty", "", "", party.NameOrderFirstLast, ""},
		{"LastCommaFirst_Empty", "", "", party.NameOrderLastCommaFirst, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := party.Compose(person(tt.first, tt.last, tt.order))

			name, ok := res.Name.Get()
			assert.True(t, ok, "Name must be computed for a known order")
			assert.Equal(t, tt.want, name)
			assert.Equal(t, res.Name, res.DisplayName, "DisplayName must mirror Name")
		})
	}
}

func TestCompose_Person_UnknownOrder(t *testing.T) {
	for _, p := range []party.Patch{
		person("John", "Doe", "middle_first"),
		{Type: party.Some(party.TypePerson), FirstName: party.Some("John")},
		{Type: party.Some(party.TypePerson), NameOrder: party.Null[party.NameOrder]()},
	} {
		res := party.Compose(p)

		assert.False(t, res.Name.IsSet(), "Name stays unset for an undetermined order")
		assert.True(t, res.DisplayName.IsNull(), "DisplayName is explicitly nulled")
	}
}

func TestCompose_Organization(t *testing.T) {
	// Name carried by the patch passes through.
	res := party.Compose(party.Patch{
		Type:      party.Some(party.TypeOrganization),
		Name:      party.Some("Acme Corp"),
		FirstName: party.Some("ignored"),
	})
	assert.Equal(t, party.Some("Acme Corp"), res.Name)
	assert.Equal(t, party.Some("Acme Corp"), res.DisplayName)

	// No name in the patch: Name unset, DisplayName null.
	res = party.Compose(party.Patch{Type: party.Some(party.TypeOrganization)})
	assert.False(t, res.Name.IsSet())
	assert.True(t, res.DisplayName.IsNull())

	// Null name passes through as null.
	res = party.Compose(party.Patch{Type: party.Some(party.TypeOrganization), Name: party.Null[string]()})
	assert.True(t, res.Name.IsNull())
	assert.True(t, res.DisplayName.IsNull())
}

func TestCompose_UndeterminedType(t *testing.T) {
	for _, p := range []party.Patch{
		{},
		{Type: party.Null[party.Type]()},
		{Type: party.Some(party.Type("robot")), Name: party.Some("R2")},
	} {
		res := party.Compose(p)
		assert.True(t, res.Name.IsNull())
		assert.True(t, res.DisplayName.IsNull())
	}
}

func TestCompose_Idempotent(t *testing.T) {
	in := person("Ada", "Lovelace", party.NameOrderLastCommaFirst)

	first := party.Compose(in)
	second := party.Compose(in)
	assert.Equal(t, first, second)

	// Recomposing with the output merged back in is stable too.
	third := party.Compose(in.Merge(first))
	assert.Equal(t, first, third)
}

func TestOnChangeHandlers_ShareComposition(t *testing.T) {
	in := person("John", "Doe", party.NameOrderFirstLast)
	want := party.Compose(in)

	assert.Equal(t, want, party.OnChangeFirstName(in))
	assert.Equal(t, want, party.OnChangeLastName(in))
	assert.Equal(t, want, party.OnChangeNameOrder(in))
}

func TestOnChangeDisplayName(t *testing.T) {
	// Without a type nothing happens.
	assert.True(t, party.OnChangeDisplayName(party.Patch{DisplayName: party.Some("X")}).Empty())

	// Organization: the edited display name becomes the name.
	res := party.OnChangeDisplayName(party.Patch{
		Type:        party.Some(party.TypeOrganization),
		Name:        party.Some("Old"),
		DisplayName: party.Some("New"),
	})
	assert.Equal(t, party.Some("New"), res.Name)
	assert.Equal(t, party.Some("New"), res.DisplayName)

	// Person: the edit cannot bypass the composition rule.
	p := person("John", "Doe", party.NameOrderLastFirst)
	p.DisplayName = party.Some("Johnny")
	res = party.OnChangeDisplayName(p)
	assert.Equal(t, party.Some("Doe John"), res.Name)
	assert.Equal(t, party.Some("Doe John"), res.DisplayName)
}

func TestJoinName_UnknownOrder(t *testing.T) {
	name, ok := party.JoinName("", "John", "Doe")
	assert.False(t, ok)
	assert.Empty(t, name)
}
