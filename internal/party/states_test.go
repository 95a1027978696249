package party_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-partytype/internal/party"
)

func TestReadOnly(t *testing.T) {
	org := party.Contact{Type: party.TypeOrganization, Active: true}
	per := party.Contact{Type: party.TypePerson, Active: true}

	tests := []struct {
		field   party.Field
		wantOrg bool
		wantPer bool
	}{
		{party.FieldType, false, false},
		{party.FieldDisplayName, false, true},
		{party.FieldFirstName, true, false},
		{party.FieldLastName, true, false},
		{party.FieldNameOrder, true, false},
		{party.FieldGender, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			assert.Equal(t, tt.wantOrg, party.ReadOnly(tt.field, org), "organization")
			assert.Equal(t, tt.wantPer, party.ReadOnly(tt.field, per), "person")

			inactive := per
			inactive.Active = false
			assert.True(t, party.ReadOnly(tt.field, inactive), "inactive contacts are read-only")
		})
	}
}

func TestRequired(t *testing.T) {
	per := party.Contact{Type: party.TypePerson, Active: true}
	assert.True(t, party.Required(party.FieldFirstName, per))
	assert.True(t, party.Required(party.FieldLastName, per))
	assert.True(t, party.Required(party.FieldNameOrder, per))
	assert.True(t, party.Required(party.FieldDisplayName, per))
	assert.False(t, party.Required(party.FieldGender, per))

	per.LastName = "Doe"
	assert.True(t, party.Required(party.FieldLastName, per), "last name stays required while first name is empty")
	assert.False(t, party.Required(party.FieldFirstName, per))

	org := party.Contact{Type: party.TypeOrganization, Active: true}
	assert.False(t, party.Required(party.FieldFirstName, org))
	assert.False(t, party.Required(party.FieldNameOrder, org))
	assert.True(t, party.Required(party.FieldDisplayName, org))
}

func TestStates_CoversEveryField(t *testing.T) {
	states := party.States(party.Defaults(party.DefaultOptions{}))
	require.Len(t, states, len(party.Fields))
	for i, s := range states {
		assert.Equal(t, party.Fields[i], s.Field)
		assert.NotEmpty(t, s.Field.LabelKey())
	}
}

func TestValidate(t *testing.T) {
	valid := party.Contact{
		Type:      party.TypePerson,
		Name:      "Doe",
		LastName:  "Doe",
		NameOrder: party.NameOrderLastFirst,
		Active:    true,
	}
	assert.NoError(t, party.Validate(valid))

	assert.NoError(t, party.Validate(party.Contact{Type: party.TypeOrganization, Name: "Acme"}))

	// Person without any name part.
	err := party.Validate(party.Contact{Type: party.TypePerson, NameOrder: party.NameOrderFirstLast})
	require.Error(t, err)
	assert.ErrorIs(t, err, party.ErrRequired)

	var fe *party.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, []party.Field{party.FieldDisplayName, party.FieldFirstName, party.FieldLastName}, fe.Field)

	// Unknown selection values.
	bad := valid
	bad.NameOrder = "sideways"
	assert.ErrorIs(t, party.Validate(bad), party.ErrInvalidValue)

	bad = valid
	bad.Type = "robot"
	assert.ErrorIs(t, party.Validate(bad), party.ErrInvalidValue)

	// Organization without a name.
	assert.ErrorIs(t, party.Validate(party.Contact{Type: party.TypeOrganization}), party.ErrRequired)
}
