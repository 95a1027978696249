package party

import "github.com/tartampluch/go-partytype/internal/config"

// Field names a user-editable contact field.
type Field string

const (
	FieldType        Field = "type"
	FieldDisplayName Field = "display_name"
	FieldFirstName   Field = "first_name"
	FieldLastName    Field = "last_name"
	FieldNameOrder   Field = "name_order"
	FieldGender      Field = "gender"
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldType, FieldDisplayName, FieldLastName, FieldFirstName, FieldNameOrder, FieldGender}

// LabelKey returns the translation key of the field label.
func (f Field) LabelKey() string {
	switch f {
	case FieldType:
		return config.TKeyFieldType
	case FieldDisplayName:
		return config.TKeyFieldName
	case FieldFirstName:
		return config.TKeyFieldFirstName
	case FieldLastName:
		return config.TKeyFieldLastName
	case FieldNameOrder:
		return config.TKeyFieldNameOrder
	case FieldGender:
		return config.TKeyFieldGender
	}
	return string(f)
}

// State is the UI state of one field for a given contact.
type State struct {
	Field    Field
	ReadOnly bool
	Required bool
}

// ReadOnly reports whether f must not be edited on c. Nothing is editable on
// an inactive contact.
func ReadOnly(f Field, c Contact) bool {
	if !c.Active {
		return true
	}
	switch f {
	case FieldType:
		return false
	case FieldDisplayName:
		return c.Type != TypeOrganization
	case FieldFirstName, FieldLastName, FieldNameOrder, FieldGender:
		return c.Type != TypePerson
	}
	return false
}

// Required reports whether f must carry a value on c.
func Required(f Field, c Contact) bool {
	switch f {
	case FieldDisplayName:
		return true
	case FieldFirstName:
		return c.IsPerson() && c.LastName == ""
	case FieldLastName:
		return c.IsPerson() && c.FirstName == ""
	case FieldNameOrder:
		return c.IsPerson()
	}
	return false
}

// States evaluates every field of c.
func States(c Contact) []State {
	states := make([]State, 0, len(Fields))
	for _, f := range Fields {
		states = append(states, State{
			Field:    f,
			ReadOnly: ReadOnly(f, c),
			Required: Required(f, c),
		})
	}
	return states
}

// Value returns the raw stored value of f.
func (c Contact) Value(f Field) string {
	switch f {
	case FieldType:
		return string(c.Type)
	case FieldDisplayName:
		return c.Name
	case FieldFirstName:
		return c.FirstName
	case FieldLastName:
		return c.LastName
	case FieldNameOrder:
		return string(c.NameOrder)
	case FieldGender:
		return string(c.Gender)
	}
	return ""
}
